package extraction

import "fmt"

type ErrorKind string

const (
	// KindService covers transport, model and file failures, including
	// the media-call timeout.
	KindService ErrorKind = "service"
	// KindNoJSON means the response had no '{'..'}' pair.
	KindNoJSON ErrorKind = "no_json"
	// KindBadJSON means a payload was found but failed to parse.
	KindBadJSON ErrorKind = "bad_json"
	// KindInvalid means no candidate survived required-field validation.
	KindInvalid ErrorKind = "invalid_candidate"
)

// Error is the structured extraction failure handed back to the webhook
// layer so it can keep processing the rest of a media batch.
type Error struct {
	Kind    ErrorKind
	Details string
}

func (e *Error) Error() string {
	return fmt.Sprintf("extraction failed (%s): %s", e.Kind, e.Details)
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Details: fmt.Sprintf(format, args...)}
}
