package completion

import "errors"

var (
	ErrEmptyProof    = errors.New("proof image is empty")
	ErrProofRequired = errors.New("proof image is required for successful completion")
	ErrFlowFinished  = errors.New("completion flow already reached a terminal state")
)
