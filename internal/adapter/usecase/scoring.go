package usecase

import (
	"math"

	"adserve/internal/core/domain"
)

// Composite score weights. Profit dominates, relevance second, budget
// performance last.
const (
	weightProfit      = 0.525
	weightRelevance   = 0.275
	weightPerformance = 0.175
)

// pacingPenaltyStep is the multiplier lost per 5 percentage points of
// over-delivery.
const pacingPenaltyStep = 0.05

// normalize linearly rescales v into [0,1] using the given range, clamped at
// the boundaries. A degenerate range yields 0.
func normalize(v, minVal, maxVal float64) float64 {
	if maxVal-minVal == 0 {
		return 0
	}
	return min(1, max(0, (v-minVal)/(maxVal-minVal)))
}

// normalizeRelevance maps a raw relevance score into [0,1] using the cached
// global range. When the range is degenerate the result is 1 if the range
// sits at zero (no scores recorded at all) and 0 otherwise.
func normalizeRelevance(raw, mlMin, mlMax float64) float64 {
	if mlMax > mlMin {
		return min(1, max(0, (raw-mlMin)/(mlMax-mlMin)))
	}
	if mlMax == 0 {
		return 1
	}
	return 0
}

// profit returns the expected monetary profit P for a campaign given the
// normalized relevance, and P normalized within the campaign's own
// [cost_per_impression, cost_per_impression+cost_per_click] range.
func profit(c domain.Campaign, mlNorm float64) (p, pNorm float64) {
	p = c.CostPerImpression + mlNorm*c.CostPerClick
	pNorm = normalize(p, c.CostPerImpression, c.CostPerImpression+c.CostPerClick)
	return p, pNorm
}

// pacingPenalty returns a stepped multiplier dampening over-delivery: for
// every full 5 percentage points the ratio exceeds 1, five percent of the
// score is removed, bottoming out at 0.
func pacingPenalty(ratio float64) float64 {
	if ratio <= 1 {
		return 1
	}
	steps := math.Floor((ratio - 1) * 100 / 5)
	return max(0, 1-pacingPenaltyStep*steps)
}

// scoreInput carries everything adScore needs. Impressions and clicks may
// come from the cached campaign counters (allocation path) or from fresh row
// counts (diagnostic path); the caller decides.
type scoreInput struct {
	campaign     domain.Campaign
	rawScore     float64
	mlMin, mlMax float64
	impressions  int64
	clicks       int64
	maxProfit    float64
}

// adScore computes the composite campaign score. The formula blends a
// revenue-weighted profit component, the normalized relevance and a budget
// performance term, then dampens the result by the remaining impression
// deficit. With withPacing set, stepped over-delivery penalties are applied
// on top; the allocation path deliberately omits them and relies on the
// deficit factor alone.
func adScore(in scoreInput, withPacing bool) float64 {
	c := in.campaign

	mlNorm := normalizeRelevance(in.rawScore, in.mlMin, in.mlMax)
	p, pNorm := profit(c, mlNorm)

	revenueMultiplier := 1.0
	if in.maxProfit > 0 {
		revenueMultiplier = p / in.maxProfit
	}
	profitComponent := pNorm * revenueMultiplier

	relevance := mlNorm

	impressionRatio := float64(in.impressions+1) / float64(c.ImpressionsLimit)
	impressionPerf := min(impressionRatio, 1)
	// predicted click probability: use the normalized relevance as a proxy
	predictedClicks := mlNorm
	clickRatio := (float64(in.clicks) + predictedClicks) / float64(c.ClicksLimit)
	clickPerf := min(clickRatio, 1)
	performance := (impressionPerf + clickPerf) / 2

	base := weightProfit*profitComponent + weightRelevance*relevance + weightPerformance*performance

	deficit := 0.0
	if c.ImpressionsLimit > 0 {
		remaining := max(0, int64(c.ImpressionsLimit)-in.impressions)
		deficit = float64(remaining) / float64(c.ImpressionsLimit)
	}
	score := base * deficit

	if withPacing {
		score *= pacingPenalty(impressionRatio)
		score *= pacingPenalty(clickRatio)
	}
	return score
}
