package domains

import "source.hodakov.me/hdkv/wavetunes/internal/domains/scanner/dto"

const ScannerName = "scanner"

type Scanner interface {
	Scan() ([]*dto.Job, error)
}
