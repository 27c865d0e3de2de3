package batch_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/answerer/internal/batch"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadQuestions(t *testing.T) {
	t.Run("should load inputs and optional domains", func(t *testing.T) {
		path := writeFile(t, "questions.json", `[
			{"input": "Solve for x: 3x+5=20", "domain": "math"},
			{"input": "Why is the sky blue?"},
			{"input": "Plan a trip", "domain": null},
			{"domain": "coding"}
		]`)

		questions, err := batch.LoadQuestions(path)

		require.NoError(t, err)
		require.Len(t, questions, 4)
		require.Equal(t, "Solve for x: 3x+5=20", questions[0].Input)
		require.NotNil(t, questions[0].Domain)
		require.Equal(t, "math", *questions[0].Domain)
		require.Nil(t, questions[1].Domain)
		require.Nil(t, questions[2].Domain)
		require.Empty(t, questions[3].Input)
	})

	t.Run("should reject non-array input", func(t *testing.T) {
		path := writeFile(t, "questions.json", `{"input": "q"}`)

		_, err := batch.LoadQuestions(path)

		require.ErrorIs(t, err, batch.ErrNotArray)
	})

	t.Run("should report missing file", func(t *testing.T) {
		_, err := batch.LoadQuestions(filepath.Join(t.TempDir(), "missing.json"))

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to open")
	})
}

func TestLoadLabeledQuestions(t *testing.T) {
	path := writeFile(t, "dev.json", `[{"input": "2+2?", "expected_output": "4"}]`)

	items, err := batch.LoadLabeledQuestions(path)

	require.NoError(t, err)
	require.Equal(t, []batch.LabeledQuestion{{Input: "2+2?", ExpectedOutput: "4"}}, items)
}

func TestWriteAnswers_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	answers := []batch.Answer{{Output: "5"}, {Output: "a <b> & café"}}

	require.NoError(t, batch.WriteAnswers(path, answers))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  {\n    \"output\": \"5\"\n  }")
	require.Contains(t, string(data), "a <b> & café")

	raw, err := batch.LoadRawAnswers(path)
	require.NoError(t, err)
	require.Len(t, raw, 2)
	require.JSONEq(t, `"5"`, string(raw[0]["output"]))
}

func TestEncodeAnswers_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, batch.EncodeAnswers(&buf, nil))

	require.Equal(t, "[]", strings.TrimSpace(buf.String()))
}
