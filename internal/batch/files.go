// Package batch drives the agent over question files: it generates answer
// files, validates them against the grader's format, and scores the
// exploratory pipeline against labeled data.
package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotArray is returned when an input file does not hold a JSON array.
var ErrNotArray = errors.New("input file must contain a list of question objects")

// Question is one item of a question file. A nil Domain means the label is absent.
type Question struct {
	Input  string  `json:"input"`
	Domain *string `json:"domain,omitempty"`
}

// LabeledQuestion is one item of a development file.
type LabeledQuestion struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

// Answer is one item of an answer file.
type Answer struct {
	Output string `json:"output"`
}

// RawAnswer is an answer object as read back from disk, before validation.
type RawAnswer map[string]json.RawMessage

// LoadQuestions reads a question file.
func LoadQuestions(path string) ([]Question, error) {
	var questions []Question
	if err := loadArray(path, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// LoadLabeledQuestions reads a development file with expected outputs.
func LoadLabeledQuestions(path string) ([]LabeledQuestion, error) {
	var items []LabeledQuestion
	if err := loadArray(path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// LoadRawAnswers reads an answer file without assuming its shape.
func LoadRawAnswers(path string) ([]RawAnswer, error) {
	var answers []RawAnswer
	if err := loadArray(path, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// DecodeArray decodes a JSON array from r into dst, rejecting any other top-level value.
func DecodeArray(r io.Reader, dst interface{}) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return ErrNotArray
	}

	if err := json.Unmarshal(trimmed, dst); err != nil {
		return fmt.Errorf("failed to decode input: %w", err)
	}

	return nil
}

// WriteAnswers writes answers as an indented JSON array.
func WriteAnswers(path string, answers []Answer) error {
	f, err := os.Create(path) //nolint:gosec // user-provided path is expected
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := EncodeAnswers(f, answers); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}

// EncodeAnswers writes answers to w with two-space indentation and no HTML escaping.
func EncodeAnswers(w io.Writer, answers []Answer) error {
	if answers == nil {
		answers = []Answer{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(answers); err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}

	return nil
}

func loadArray(path string, dst interface{}) error {
	f, err := os.Open(path) //nolint:gosec // user-provided path is expected
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // best-effort close on input file

	if err := DecodeArray(f, dst); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
