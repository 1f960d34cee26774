package entities

import "fmt"

// ValidationError reports a human-supplied replacement that does not satisfy
// the artifact schema. The stored record is never touched when it is returned.
type ValidationError struct {
	Artifact string
	Reason   string
	Err      error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %s: %v", e.Artifact, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s: %s", e.Artifact, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ExtractionError is returned by request extractors on transport failure or
// unparseable model output.
type ExtractionError struct{ Err error }

func (e *ExtractionError) Error() string { return "extraction failed: " + errText(e.Err) }
func (e *ExtractionError) Unwrap() error { return e.Err }

// QuotingError is returned by quote generators.
type QuotingError struct{ Err error }

func (e *QuotingError) Error() string { return "quote generation failed: " + errText(e.Err) }
func (e *QuotingError) Unwrap() error { return e.Err }

// DraftingError is returned by email drafters.
type DraftingError struct{ Err error }

func (e *DraftingError) Error() string { return "email drafting failed: " + errText(e.Err) }
func (e *DraftingError) Unwrap() error { return e.Err }

func errText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
