package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// MaxOutputChars is the exclusive upper bound on an answer's length in characters.
const MaxOutputChars = 5000

// Validation failure kinds. ValidationError unwraps to one of these.
var (
	ErrLengthMismatch  = errors.New("mismatched lengths")
	ErrMissingOutput   = errors.New("missing 'output' field")
	ErrNonStringOutput = errors.New("non-string output")
	ErrOutputTooLong   = errors.New("output exceeds 5000 characters")
)

// ValidationError reports the first violation of the answer file format.
type ValidationError struct {
	Index  int // answer index, -1 for file-level errors
	Kind   error
	Detail string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("answer at index %d: %v: %s", e.Index, e.Kind, e.Detail)
}

// Unwrap returns the violation kind.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Validate checks an answer file against its question file and returns the first violation.
func Validate(questions []Question, answers []RawAnswer) error {
	if len(questions) != len(answers) {
		return &ValidationError{
			Index:  -1,
			Kind:   ErrLengthMismatch,
			Detail: fmt.Sprintf("%d questions vs %d answers", len(questions), len(answers)),
		}
	}

	for idx, answer := range answers {
		raw, ok := answer["output"]
		if !ok {
			return &ValidationError{Index: idx, Kind: ErrMissingOutput, Detail: "add an \"output\" string"}
		}

		output, isString := decodeString(raw)
		if !isString {
			return &ValidationError{
				Index:  idx,
				Kind:   ErrNonStringOutput,
				Detail: fmt.Sprintf("got %s", bytes.TrimSpace(raw)),
			}
		}

		if n := utf8.RuneCountInString(output); n >= MaxOutputChars {
			return &ValidationError{
				Index: idx,
				Kind:  ErrOutputTooLong,
				Detail: fmt.Sprintf("%d chars; make sure the answer does not include intermediate results",
					n),
			}
		}
	}

	return nil
}

// decodeString reports whether raw is a JSON string and returns its value.
// A JSON null decodes into a string without error, so the leading quote is checked first.
func decodeString(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", false
	}
	return s, true
}
