package sonic

import (
	"errors"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

var Config = sonic.Config{
	NoValidateJSONSkip: true,
	// Metadata documents are produced by external tooling, keep sonic strict on input.
	ValidateString: true,
}.Froze()

var ErrNotObject = errors.New("sonic: document is not a json object")

// SyntaxError carries the first line of a decoder error. sonic's own syntax
// errors are quoted and end with a snippet of the input and a caret ruler.
type SyntaxError struct {
	Msg string
	Err error
}

func (e *SyntaxError) Error() string {
	return e.Msg
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func newSyntaxError(err error) error {
	msg := err.Error()
	if unquoted, uerr := strconv.Unquote(msg); uerr == nil {
		msg = unquoted
	}
	msg, _, _ = strings.Cut(msg, "\n")
	return &SyntaxError{Msg: strings.TrimSpace(msg), Err: err}
}

// UnmarshalObject decodes data as a generic json object. A top-level value that
// is not an object, including null, is rejected.
func UnmarshalObject(data []byte) (map[string]any, error) {
	var obj map[string]any
	if err := Config.Unmarshal(data, &obj); err != nil {
		return nil, newSyntaxError(err)
	}
	if obj == nil {
		return nil, ErrNotObject
	}
	return obj, nil
}
