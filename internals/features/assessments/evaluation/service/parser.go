// file: internals/features/assessments/evaluation/service/parser.go
package service

import (
	"regexp"
	"strconv"
	"strings"
)

const defaultScore = 75

var (
	scoreRe = regexp.MustCompile(`Score:\s*(\d{1,3})/100`)
	// breakdown per komponen rubrik di body feedback, best-effort
	sectionRe = regexp.MustCompile(`^(Content|Technical|Presentation):\s*(\d{1,3})/\d{1,3}`)
)

// Evaluation: hasil parse satu respons model.
type Evaluation struct {
	Score    int
	Feedback string
	// Sections: skor per komponen rubrik bila ditemukan (key lowercase).
	Sections map[string]any
	// Fallback true kalau baris pertama tidak match kontrak dan skor jatuh
	// ke default 75. Bukan error — output terdegradasi, tetap dipersist.
	Fallback bool
}

// ParseEvaluation menerapkan kontrak parsing:
//   - baris pertama dicocokkan ke "Score: X/100", hasil di-clamp ke [0,100];
//     kalau tidak match, skor = 75
//   - feedback = semua baris non-kosong setelah baris pertama, urutan asli,
//     digabung "\n" (baris Score tidak ikut)
func ParseEvaluation(text string) Evaluation {
	lines := strings.Split(text, "\n")

	ev := Evaluation{Score: defaultScore, Fallback: true}
	if len(lines) > 0 {
		if m := scoreRe.FindStringSubmatch(lines[0]); m != nil {
			n, _ := strconv.Atoi(m[1])
			ev.Score = clampScore(n)
			ev.Fallback = false
		}
	}

	var feedback []string
	for _, line := range lines[1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		feedback = append(feedback, line)

		if m := sectionRe.FindStringSubmatch(trimmed); m != nil {
			if ev.Sections == nil {
				ev.Sections = map[string]any{}
			}
			n, _ := strconv.Atoi(m[2])
			ev.Sections[strings.ToLower(m[1])] = n
		}
	}
	ev.Feedback = strings.Join(feedback, "\n")

	return ev
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
