package dto

// Job is one source-to-destination transcoding unit of work. Immutable
// once built; consumed by exactly one worker.
type Job struct {
	SourcePath      string
	DestinationPath string
}
