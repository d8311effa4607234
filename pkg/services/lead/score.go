// Package lead scores inbound leads from the contact and intent signals
// the capture forms collect.
package lead

// Signals is the subset of a capture-form submission that feeds scoring.
// Every field is optional; absent fields simply contribute nothing.
type Signals struct {
	Email     string
	Company   string
	Phone     string
	Budget    string // bracket label, e.g. "5k-10k"
	Platforms []string
}

const maxScore = 100

var budgetScores = map[string]int{
	"1k-5k":  10,
	"5k-10k": 20,
	"10k+":   30,
}

// Score qualifies a lead on a 0-100 scale. Purely additive, so the result
// can never go negative; it is capped at 100.
func Score(s Signals) int {
	score := 0
	if s.Email != "" {
		score += 10
	}
	if s.Company != "" {
		score += 20
	}
	if s.Phone != "" {
		score += 15
	}
	score += budgetScores[s.Budget]
	score += 5 * len(s.Platforms)

	if score > maxScore {
		score = maxScore
	}
	return score
}
