package sigil

import (
	"fmt"

	"github.com/komekomeaaa/tarot/internal/domain"
)

// Deadband is the neutral zone of a Likert axis total. Totals inside
// [-Deadband, +Deadband] resolve to the axis' first letter.
const Deadband = 4

// BinaryAnswer is one forced-choice answer naming the chosen pole.
type BinaryAnswer struct {
	QuestionID int    `json:"question_id"`
	Letter     string `json:"letter"`
}

// LikertAnswer scores agreement with a statement keyed to one pole.
// Score is in [-2, 2]; positive strengthens Letter.
type LikertAnswer struct {
	QuestionID int    `json:"question_id"`
	Letter     string `json:"letter"`
	Score      int    `json:"score"`
}

// AxisScore is the resolved state of one axis after Likert scoring.
type AxisScore struct {
	Axis    Axis   `json:"-"`
	Total   int    `json:"total"` // positive favours Axis.First
	Letter  string `json:"letter"`
	Neutral bool   `json:"neutral"`
}

// Classifier turns an answer sheet into a code.
type Classifier interface {
	Classify() Code
}

// ClassifyBinary counts one vote per answer; on each axis the letter with at
// least as many votes as the other wins, so ties go to the first letter.
// Answers naming unknown letters are ignored.
func ClassifyBinary(answers []BinaryAnswer) Code {
	var first, second [len(Axes)]int
	for _, a := range answers {
		if len(a.Letter) != 1 {
			continue
		}
		idx, isFirst, ok := axisOf(a.Letter[0])
		if !ok {
			continue
		}
		if isFirst {
			first[idx]++
		} else {
			second[idx]++
		}
	}

	code := make([]byte, len(Axes))
	for i, ax := range Axes {
		if first[i] >= second[i] {
			code[i] = ax.First
		} else {
			code[i] = ax.Second
		}
	}
	return Code(code)
}

// ClassifyLikert sums signed scores per axis (positive toward the first
// letter) and resolves each axis against the deadband. Totals inside the
// deadband, including zero, resolve to the first letter; only totals below
// -Deadband pick the second letter.
func ClassifyLikert(answers []LikertAnswer) (Code, []AxisScore) {
	var totals [len(Axes)]int
	for _, a := range answers {
		if len(a.Letter) != 1 {
			continue
		}
		idx, isFirst, ok := axisOf(a.Letter[0])
		if !ok {
			continue
		}
		if isFirst {
			totals[idx] += a.Score
		} else {
			totals[idx] -= a.Score
		}
	}

	code := make([]byte, len(Axes))
	scores := make([]AxisScore, len(Axes))
	for i, ax := range Axes {
		t := totals[i]
		neutral := t >= -Deadband && t <= Deadband
		letter := ax.First
		if !neutral && t < 0 {
			letter = ax.Second
		}
		code[i] = letter
		scores[i] = AxisScore{Axis: ax, Total: t, Letter: string(letter), Neutral: neutral}
	}
	return Code(code), scores
}

// ValidateLikert rejects scores outside [-2, 2] and unknown letters.
func ValidateLikert(answers []LikertAnswer) error {
	for _, a := range answers {
		if a.Score < -2 || a.Score > 2 {
			return fmt.Errorf("%w: question %d score %d out of range", domain.ErrInvalidAnswer, a.QuestionID, a.Score)
		}
		if len(a.Letter) != 1 {
			return fmt.Errorf("%w: question %d letter %q", domain.ErrInvalidAnswer, a.QuestionID, a.Letter)
		}
		if _, _, ok := axisOf(a.Letter[0]); !ok {
			return fmt.Errorf("%w: question %d letter %q", domain.ErrInvalidAnswer, a.QuestionID, a.Letter)
		}
	}
	return nil
}

// ValidateBinary rejects answers naming unknown letters.
func ValidateBinary(answers []BinaryAnswer) error {
	for _, a := range answers {
		if len(a.Letter) != 1 {
			return fmt.Errorf("%w: question %d letter %q", domain.ErrInvalidAnswer, a.QuestionID, a.Letter)
		}
		if _, _, ok := axisOf(a.Letter[0]); !ok {
			return fmt.Errorf("%w: question %d letter %q", domain.ErrInvalidAnswer, a.QuestionID, a.Letter)
		}
	}
	return nil
}

// BinarySheet adapts binary answers to Classifier.
type BinarySheet []BinaryAnswer

func (s BinarySheet) Classify() Code { return ClassifyBinary(s) }

// LikertSheet adapts Likert answers to Classifier.
type LikertSheet []LikertAnswer

func (s LikertSheet) Classify() Code {
	code, _ := ClassifyLikert(s)
	return code
}
