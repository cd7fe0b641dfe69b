// file: internals/features/assessments/evaluation/service/parser_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEvaluation_ScoreLine(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantScore int
		fallback  bool
	}{
		{"skor normal", "Score: 85/100\nBagus.", 85, false},
		{"skor nol", "Score: 0/100\nKurang.", 0, false},
		{"skor penuh", "Score: 100/100\nSempurna.", 100, false},
		{"skor dengan spasi", "Score:   92/100\nOke.", 92, false},
		{"prefix sebelum skor", "Hasil akhir Score: 70/100\nCukup.", 70, false},
		{"clamp di atas 100", "Score: 999/100\nAneh.", 100, false},
		{"tanpa baris skor", "Evaluasi bagus tapi formatnya salah.", 75, true},
		{"skor di baris kedua diabaikan", "Pembukaan.\nScore: 90/100", 75, true},
		{"respons kosong", "", 75, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := ParseEvaluation(tt.input)
			assert.Equal(t, tt.wantScore, ev.Score)
			assert.Equal(t, tt.fallback, ev.Fallback)
		})
	}
}

func TestParseEvaluation_FeedbackJoin(t *testing.T) {
	input := "Score: 80/100\n\nContent: 35/40\nIsi cukup lengkap.\n\nTechnical: 25/30\nAda beberapa kesalahan kecil.\n"

	ev := ParseEvaluation(input)

	assert.Equal(t, 80, ev.Score)
	// baris kosong dibuang, urutan asli dipertahankan, baris Score tidak ikut
	assert.Equal(t,
		"Content: 35/40\nIsi cukup lengkap.\nTechnical: 25/30\nAda beberapa kesalahan kecil.",
		ev.Feedback)
	assert.NotContains(t, ev.Feedback, "Score: 80")
}

func TestParseEvaluation_SectionBreakdown(t *testing.T) {
	input := "Score: 88/100\nContent: 36/40\nTechnical: 27/30\nPresentation: 25/30\nKey Strength: rapi."

	ev := ParseEvaluation(input)

	assert.Equal(t, map[string]any{
		"content":      36,
		"technical":    27,
		"presentation": 25,
	}, ev.Sections)
}

func TestParseEvaluation_NoSections(t *testing.T) {
	ev := ParseEvaluation("Score: 60/100\nFeedback bebas tanpa breakdown.")
	assert.Nil(t, ev.Sections)
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, clampScore(-5))
	assert.Equal(t, 50, clampScore(50))
	assert.Equal(t, 100, clampScore(250))
}
