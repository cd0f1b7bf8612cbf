package pipeline

import "context"

// Processor runs extraction over one downloaded payload file.
type Processor interface {
	Process(ctx context.Context, payloadPath string) error
}
