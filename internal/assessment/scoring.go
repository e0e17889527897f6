package assessment

// HighRiskThreshold gates the "recommended next steps" panel. The cutoff is
// the same for both instruments.
const HighRiskThreshold = 10

// Score sums a completed or partial answer sequence, treating unanswered
// entries as zero. Normal navigation cannot reach the result with unanswered
// questions; the zero treatment is defensive only.
func Score(answers []int) int {
	total := 0
	for _, a := range answers {
		if a > 0 {
			total += a
		}
	}
	return total
}

// Classify maps a total score to its severity band: the first band whose
// range contains the score, or the last (most severe) band when the score
// falls outside every range.
func Classify(def Definition, total int) Band {
	for _, b := range def.Scoring {
		if total >= b.Min && total <= b.Max {
			return b
		}
	}
	return def.Scoring[len(def.Scoring)-1]
}

// HighRisk reports whether a total score warrants the next-steps panel.
func HighRisk(total int) bool {
	return total >= HighRiskThreshold
}
