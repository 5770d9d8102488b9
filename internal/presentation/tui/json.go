package tui

import (
	"encoding/json"
	"io"

	"github.com/aretw0/puzzlebox/pkg/domain"
)

// AnswerWriter presents answers to the user.
// This allows switching between Text and JSON (structured) output.
type AnswerWriter interface {
	Answer(a domain.Answer) error
}

// JSONWriter emits each answer as a single JSON line.
type JSONWriter struct {
	Encoder *json.Encoder
}

// NewJSONWriter creates a writer for JSON-Lines output.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{Encoder: json.NewEncoder(w)}
}

func (j *JSONWriter) Answer(a domain.Answer) error {
	return j.Encoder.Encode(a)
}
