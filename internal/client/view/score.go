package view

// Indicator is the qualitative color class of a score.
type Indicator string

const (
	IndicatorPositive Indicator = "positive"
	IndicatorCaution  Indicator = "caution"
	IndicatorNegative Indicator = "negative"
)

// ScoreIndicator classifies a percentage: 70 and above is positive, 50 and
// above is caution, everything below is negative.
func ScoreIndicator(percentage float64) Indicator {
	switch {
	case percentage >= 70:
		return IndicatorPositive
	case percentage >= 50:
		return IndicatorCaution
	default:
		return IndicatorNegative
	}
}
