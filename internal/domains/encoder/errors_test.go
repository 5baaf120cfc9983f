package encoder

import (
	"errors"
	"testing"
)

func TestClassifyEncodeStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"buffer too small", -1, ErrBufferTooSmall},
		{"allocation failure", -2, ErrAllocation},
		{"not initialized", -3, ErrNotInitialized},
		{"psychoacoustic failure", -4, ErrPsychoAcoustic},
		{"unknown status", -42, ErrEncode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyEncodeStatus(tt.status)
			if !errors.Is(err, tt.want) {
				t.Fatalf("classifyEncodeStatus(%d) = %v, want %v", tt.status, err, tt.want)
			}
		})
	}
}
