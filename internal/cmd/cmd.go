package cmd

import (
	"errors"
)

var (
	ErrInvalidArgs = errors.New("arguments invalid")
	// ErrGenerationAborted wraps the first member failure under FailurePolicyAbort.
	ErrGenerationAborted = errors.New("generation aborted")
)

// FailurePolicy decides what happens when a member manifest can not be
// read or its package fails validation.
type FailurePolicy string

const (
	// FailurePolicySkip reports the member and continues with the rest.
	FailurePolicySkip FailurePolicy = "skip"
	// FailurePolicyAbort stops the run, no artifact is written.
	FailurePolicyAbort FailurePolicy = "abort"
)
