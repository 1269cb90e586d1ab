package game

import "strings"

// Verdict classifies the input buffer against the target word.
type Verdict int

// Verdict values.
const (
	Progressing Verdict = iota
	Complete
	Mismatch
)

func (v Verdict) String() string {
	switch v {
	case Complete:
		return "complete"
	case Mismatch:
		return "mismatch"
	default:
		return "progressing"
	}
}

// Evaluate compares input against target, case-sensitively.
func Evaluate(input, target string) Verdict {
	if input == target {
		return Complete
	}
	if len(input) > len(target) || !strings.HasPrefix(target, input) {
		return Mismatch
	}
	return Progressing
}

// CharState is the display state of one target character.
type CharState int

// CharState values.
const (
	CharPending CharState = iota
	CharCorrect
	CharWrong
)

// Classify returns one state per rune of target.
func Classify(input, target string) []CharState {
	in := []rune(input)
	out := make([]CharState, 0, len(target))
	for i, r := range []rune(target) {
		switch {
		case i >= len(in):
			out = append(out, CharPending)
		case in[i] == r:
			out = append(out, CharCorrect)
		default:
			out = append(out, CharWrong)
		}
	}
	return out
}
