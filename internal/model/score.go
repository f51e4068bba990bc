package model

// Grade is the letter band for a trust score.
type Grade string

// Grade bands.
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
)

// RuleAward is the outcome of one scoring rule.
type RuleAward struct {
	Rule   string
	Points int
}

// ScoreBreakdown is the full result of a scoring run: one award per rule in
// rule-table order, their sum, and the derived grade.
type ScoreBreakdown struct {
	Grade  Grade
	Awards []RuleAward
	Total  int
}

// Points returns the points awarded for the named rule, or zero if the rule
// is not present in the breakdown.
func (s ScoreBreakdown) Points(rule string) int {
	for _, a := range s.Awards {
		if a.Rule == rule {
			return a.Points
		}
	}
	return 0
}
