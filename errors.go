package partid

import (
	"errors"
	"fmt"
)

var (
	ErrInitTimeout  = errors.New("morphological analysis library did not become available in time")
	ErrNoSource     = errors.New("no dictionary source could be built")
	ErrUnavailable  = errors.New("statistical analyzer unavailable")
	ErrNotReady     = errors.New("statistical analyzer not ready")
	ErrNotInOverlay = errors.New("entry is not part of the user dictionary")
	ErrEmptySurface = errors.New("surface form must not be empty")
)

// BuildError is returned when a single dictionary source fails to build.
type BuildError struct {
	Source Source
	Err    error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build tokenizer from %s: %v", e.Source, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// FormatError reports an invalid vocabulary entry. Import rejects the whole
// payload when any entry produces one.
type FormatError struct {
	Surface string
	Field   string
	Reason  string
}

func (e *FormatError) Error() string {
	if e.Surface == "" {
		return fmt.Sprintf("invalid dictionary format: %s", e.Reason)
	}
	if e.Field == "" {
		return fmt.Sprintf("invalid dictionary entry %q: %s", e.Surface, e.Reason)
	}
	return fmt.Sprintf("invalid dictionary entry %q: field %q %s", e.Surface, e.Field, e.Reason)
}

// AnalysisError wraps a failure raised inside the statistical tokenizer.
type AnalysisError struct {
	Text  string
	Cause error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("statistical analysis of %q failed: %v", stringCapLen(e.Text, 32), e.Cause)
}

func (e *AnalysisError) Unwrap() error { return e.Cause }

// stringCapLen shortens s to at most max runes for log output.
func stringCapLen(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}
