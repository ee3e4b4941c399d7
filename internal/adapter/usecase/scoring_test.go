package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"adserve/internal/core/domain"
	"adserve/internal/core/port"
)

func TestNormalizeClampsToUnitInterval(t *testing.T) {
	cases := []struct {
		name             string
		v, minV, maxV    float64
		want             float64
	}{
		{"inside range", 5, 0, 10, 0.5},
		{"below range", -3, 0, 10, 0},
		{"above range", 42, 0, 10, 1},
		{"degenerate range", 7, 3, 3, 0},
		{"degenerate range at zero", 0, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, normalize(tc.v, tc.minV, tc.maxV), 1e-9)
		})
	}
}

func TestNormalizeRelevanceDegenerateRange(t *testing.T) {
	// no scores recorded at all: everyone is maximally relevant
	require.InDelta(t, 1.0, normalizeRelevance(0, 0, 0), 1e-9)
	require.InDelta(t, 1.0, normalizeRelevance(37, 0, 0), 1e-9)
	// a single non-zero score pins the range: fall back to 0
	require.InDelta(t, 0.0, normalizeRelevance(50, 50, 50), 1e-9)
	// regular linear case
	require.InDelta(t, 0.5, normalizeRelevance(50, 0, 100), 1e-9)
}

func TestProfitWorkedExample(t *testing.T) {
	c := domain.Campaign{CostPerImpression: 0.5, CostPerClick: 5.0}
	p, pNorm := profit(c, 0.2)
	require.InDelta(t, 1.5, p, 1e-9)
	require.InDelta(t, 0.2, pNorm, 1e-9)
}

func TestPacingPenaltySteps(t *testing.T) {
	require.InDelta(t, 1.0, pacingPenalty(0.4), 1e-9)
	require.InDelta(t, 1.0, pacingPenalty(1.0), 1e-9)
	// 4 points over: not yet a full step
	require.InDelta(t, 1.0, pacingPenalty(1.04), 1e-9)
	// 7 points over: one step
	require.InDelta(t, 0.95, pacingPenalty(1.07), 1e-9)
	// 12 points over: two steps
	require.InDelta(t, 0.90, pacingPenalty(1.12), 1e-9)
	// far over the limit the penalty bottoms out at zero
	require.InDelta(t, 0.0, pacingPenalty(3.0), 1e-9)
}

func TestAdScoreWorkedExample(t *testing.T) {
	in := scoreInput{
		campaign: domain.Campaign{
			ImpressionsLimit:  100,
			ClicksLimit:       10,
			CostPerImpression: 0.5,
			CostPerClick:      5.0,
		},
		rawScore:  20,
		mlMin:     0,
		mlMax:     100,
		maxProfit: 1.5,
	}
	// mlNorm=0.2, P=1.5, P_norm=0.2, rev=1, perf=(0.01+0.02)/2, D=1
	want := 0.525*0.2 + 0.275*0.2 + 0.175*0.015
	require.InDelta(t, want, adScore(in, false), 1e-9)
}

func TestAdScoreExhaustedBudgetIsZero(t *testing.T) {
	in := scoreInput{
		campaign: domain.Campaign{
			ImpressionsLimit:  100,
			ClicksLimit:       100,
			CostPerImpression: 10,
			CostPerClick:      10,
		},
		rawScore:    90,
		mlMin:       1,
		mlMax:       100,
		impressions: 100,
		maxProfit:   20,
	}
	require.Zero(t, adScore(in, false))
	require.Zero(t, adScore(in, true))
}

func TestAdScorePacingDampensOverDelivery(t *testing.T) {
	in := scoreInput{
		campaign: domain.Campaign{
			ImpressionsLimit:  100,
			ClicksLimit:       10,
			CostPerImpression: 1,
			CostPerClick:      2,
		},
		rawScore:    80,
		mlMin:       1,
		mlMax:       100,
		impressions: 50,
		clicks:      12, // past the click limit
		maxProfit:   3,
	}
	require.Less(t, adScore(in, true), adScore(in, false))
}

func TestRankCandidatesTieBreakIsDeterministic(t *testing.T) {
	campaign := func(b byte) domain.Campaign {
		var c domain.Campaign
		c.ID[15] = b
		c.ImpressionsLimit = 100
		c.ClicksLimit = 10
		c.CostPerImpression = 1
		c.CostPerClick = 1
		return c
	}
	forward := []port.CampaignCandidate{
		{Campaign: campaign(1), MLScore: 50},
		{Campaign: campaign(2), MLScore: 50},
	}
	backward := []port.CampaignCandidate{
		{Campaign: campaign(2), MLScore: 50},
		{Campaign: campaign(1), MLScore: 50},
	}
	rankCandidates(forward, 1, 100)
	rankCandidates(backward, 1, 100)

	require.Equal(t, forward[0].Campaign.ID, backward[0].Campaign.ID)
	require.Equal(t, forward[1].Campaign.ID, backward[1].Campaign.ID)
	require.Equal(t, byte(1), forward[0].Campaign.ID[15])
}

func TestRankCandidatesOrdersByScoreDescending(t *testing.T) {
	strong := port.CampaignCandidate{MLScore: 95}
	strong.Campaign.ID[15] = 9
	strong.Campaign.ImpressionsLimit = 100
	strong.Campaign.ClicksLimit = 10
	strong.Campaign.CostPerImpression = 1
	strong.Campaign.CostPerClick = 4

	weak := port.CampaignCandidate{MLScore: 5}
	weak.Campaign.ID[15] = 1
	weak.Campaign.ImpressionsLimit = 100
	weak.Campaign.ClicksLimit = 10
	weak.Campaign.CostPerImpression = 1
	weak.Campaign.CostPerClick = 4

	cands := []port.CampaignCandidate{weak, strong}
	rankCandidates(cands, 1, 100)

	require.Equal(t, strong.Campaign.ID, cands[0].Campaign.ID)
	require.GreaterOrEqual(t, cands[0].Score, cands[1].Score)
}
