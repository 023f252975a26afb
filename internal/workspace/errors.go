package workspace

import (
	"fmt"
)

// ViolationError describes why and which manifest is unusable for image generation.
type ViolationError struct {
	Reason  ViolationReason // Reason shortly describes what went wrong.
	Details string          // Details describes the violation in a more verbose matter.
	Path    string          // Path of the manifest responsible for this error.
	Err     error           // Err is the underlying I/O or decode error, if any.
}

func (v ViolationError) Error() string {
	if v.Reason == "" {
		v.Reason = ViolationReasonUnknown
	}

	msg := string(v.Reason)

	if v.Path != "" {
		msg += fmt.Sprintf(" in %s", v.Path)
	}

	if v.Details != "" {
		msg += ": " + v.Details
	}

	if v.Err != nil {
		msg += ": " + v.Err.Error()
	}

	return msg
}

func (v ViolationError) Unwrap() error {
	return v.Err
}

// Is matches other ViolationErrors by reason, so callers can test with
// errors.Is(err, ViolationError{Reason: ...}).
func (v ViolationError) Is(target error) bool {
	t, ok := target.(ViolationError)
	if !ok {
		return false
	}

	return t.Reason == v.Reason
}

// ViolationReason describes in short how a manifest violates the expected shape.
type ViolationReason string

// Predefined reasons for manifest violations.
const (
	ViolationReasonManifestUnreadable ViolationReason = "Could not read manifest"
	ViolationReasonManifestInvalid    ViolationReason = "Can not parse manifest"
	ViolationReasonMissingKey         ViolationReason = "Required key missing"
	ViolationReasonNoAuthors          ViolationReason = "At least one author is needed"
	ViolationReasonInvalidPattern     ViolationReason = "Invalid member pattern"
	ViolationReasonOutsideWorkspace   ViolationReason = "Manifest outside workspace"
	ViolationReasonUnknown            ViolationReason = "Unknown reason"
)

var (
	// ErrManifestUnreadable matches errors of manifests that could not be read from disk.
	ErrManifestUnreadable = ViolationError{Reason: ViolationReasonManifestUnreadable}
	// ErrManifestInvalid matches errors of manifests that are not valid TOML or have the wrong shape.
	ErrManifestInvalid = ViolationError{Reason: ViolationReasonManifestInvalid}
	// ErrMissingKey matches errors of manifests lacking a required key.
	ErrMissingKey = ViolationError{Reason: ViolationReasonMissingKey}
	// ErrNoAuthors matches errors of packages without any author.
	ErrNoAuthors = ViolationError{Reason: ViolationReasonNoAuthors}
	// ErrOutsideWorkspace matches errors of members that are absolute or point above the workspace root.
	ErrOutsideWorkspace = ViolationError{Reason: ViolationReasonOutsideWorkspace}
)
