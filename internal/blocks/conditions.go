package blocks

// Condition names a predicate over AvailableData used by alternativeIf rules.
type Condition string

const (
	ConditionNoPortfolio Condition = "no-portfolio"
	ConditionNoPricing   Condition = "no-pricing"
	ConditionNoTeam      Condition = "no-team"
)

// EvaluateCondition reports whether cond holds for data. Unknown conditions are false.
func EvaluateCondition(cond Condition, data AvailableData) bool {
	switch cond {
	case ConditionNoPortfolio:
		return !data.Portfolio
	case ConditionNoPricing:
		return !data.Pricing
	case ConditionNoTeam:
		return !data.Team
	default:
		return false
	}
}

// resolve follows alternativeIf links until a condition fails.
func resolve(rec Recommendation, data AvailableData) Recommendation {
	for rec.AlternativeIf != nil && EvaluateCondition(rec.AlternativeIf.Condition, data) {
		rec = rec.AlternativeIf.Alternative
	}
	return rec
}
