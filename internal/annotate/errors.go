package annotate

import "fmt"

// AnnotationError represents a failure of an annotation backend
type AnnotationError struct {
	Backend string
	Message string
	Cause   error
}

func (e *AnnotationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s annotator: %s: %v", e.Backend, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s annotator: %s", e.Backend, e.Message)
}

func (e *AnnotationError) Unwrap() error {
	return e.Cause
}
