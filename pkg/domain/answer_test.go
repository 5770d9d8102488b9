package domain_test

import (
	"testing"

	"github.com/aretw0/puzzlebox/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestAnswer_Lines(t *testing.T) {
	tests := []struct {
		name   string
		answer domain.Answer
		want   string
	}{
		{
			name:   "Bare Value",
			answer: domain.Single("movement", "5"),
			want:   "5",
		},
		{
			name: "Labelled Parts",
			answer: domain.Answer{
				Puzzle: "checksum",
				Parts: []domain.Part{
					{Label: "part 1", Value: "01100"},
					{Label: "part 2", Value: "10101"},
				},
			},
			want: "part 1: 01100\npart 2: 10101",
		},
		{
			name:   "No Parts",
			answer: domain.Answer{Puzzle: "empty"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.answer.String())
			assert.Len(t, tt.answer.Lines(), len(tt.answer.Parts))
		})
	}
}
