package usecase

import (
	"bytes"
	"context"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"adserve/internal/core/domain"
	"adserve/internal/core/port"
)

// maxAllocationAttempts bounds how many ranked candidates a single request
// will try to reserve before giving up.
const maxAllocationAttempts = 50

// AdUseCase provides business logic for ad selection, click recording and
// relevance-score ingestion. It orchestrates the repository, the simulated
// day provider and the normalization cache to implement port.AdUseCase.
type AdUseCase struct {
	repo   port.AdRepository
	days   port.DayProvider
	logger *slog.Logger
	scores *scoreRange
}

// NewAdUseCase creates a new usecase with the provided dependencies.
func NewAdUseCase(repo port.AdRepository, days port.DayProvider, logger *slog.Logger) *AdUseCase {
	return &AdUseCase{
		repo:   repo,
		days:   days,
		logger: logger,
		scores: newScoreRange(repo, logger),
	}
}

// SelectAd narrows campaigns to those eligible for the client, ranks them by
// composite score and reserves an impression for the best still-available
// one. Concurrent requests racing for the same campaign are resolved by the
// unique impression index: the loser moves on to the next candidate, at most
// maxAllocationAttempts times.
func (u *AdUseCase) SelectAd(ctx context.Context, clientID uuid.UUID) (*port.AdResponse, error) {
	client, err := u.repo.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, port.ErrClientNotFound
	}

	day, err := u.days.CurrentDay(ctx)
	if err != nil {
		return nil, err
	}

	u.scores.ensure(ctx)
	mlMin, mlMax := u.scores.read()

	candidates, err := u.repo.EligibleCampaigns(ctx, *client, day)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, port.ErrNoRelevantAds
	}

	rankCandidates(candidates, mlMin, mlMax)

	attempts := min(maxAllocationAttempts, len(candidates))
	for i := 0; i < attempts; i++ {
		campaign := candidates[i].Campaign
		created, err := u.repo.CreateImpression(ctx, domain.Impression{
			ClientID:     clientID,
			CampaignID:   campaign.ID,
			AdvertiserID: campaign.AdvertiserID,
			Day:          day,
			Cost:         campaign.CostPerImpression,
		})
		if err != nil {
			return nil, err
		}
		if !created {
			// a concurrent request won the race for this campaign
			continue
		}
		return &port.AdResponse{
			AdID:         campaign.ID,
			AdTitle:      campaign.AdTitle,
			AdText:       campaign.AdText,
			AdvertiserID: campaign.AdvertiserID,
		}, nil
	}
	return nil, port.ErrNoAdsAvailable
}

// RecordClick validates that the client was shown the campaign and records
// the click. The repository increments the click counter only when a row was
// actually inserted; a repeated same-day click is accepted without effect.
func (u *AdUseCase) RecordClick(ctx context.Context, clientID, campaignID uuid.UUID) error {
	client, err := u.repo.GetClient(ctx, clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return port.ErrClientNotFound
	}
	campaign, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return port.ErrCampaignNotFound
	}

	shown, err := u.repo.HasImpression(ctx, clientID, campaignID)
	if err != nil {
		return err
	}
	if !shown {
		return port.ErrNoImpression
	}

	day, err := u.days.CurrentDay(ctx)
	if err != nil {
		return err
	}
	_, err = u.repo.CreateClick(ctx, domain.Click{
		ClientID:     clientID,
		CampaignID:   campaignID,
		AdvertiserID: campaign.AdvertiserID,
		Day:          day,
		Cost:         campaign.CostPerClick,
	})
	return err
}

// CampaignScore computes the pacing-aware diagnostic score for a pair using
// freshly counted event rows instead of the cached campaign counters. When
// no score rows exist at all, the pair's own raw score substitutes for both
// ends of the normalization range.
func (u *AdUseCase) CampaignScore(ctx context.Context, clientID, campaignID uuid.UUID) (float64, error) {
	campaign, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	if campaign == nil {
		return 0, port.ErrCampaignNotFound
	}
	client, err := u.repo.GetClient(ctx, clientID)
	if err != nil {
		return 0, err
	}
	if client == nil {
		return 0, port.ErrClientNotFound
	}

	impressions, clicks, err := u.repo.CountEvents(ctx, campaignID)
	if err != nil {
		return 0, err
	}

	u.scores.refresh(ctx)
	mlMin, mlMax := u.scores.read()

	raw, err := u.repo.GetScore(ctx, clientID, campaign.AdvertiserID)
	if err != nil {
		return 0, err
	}
	rawScore := float64(raw)
	if mlMin == 0 {
		mlMin = rawScore
	}
	if mlMax == 0 {
		mlMax = rawScore
	}

	day, err := u.days.CurrentDay(ctx)
	if err != nil {
		return 0, err
	}
	candidates, err := u.repo.EligibleCampaigns(ctx, *client, day)
	if err != nil {
		return 0, err
	}
	maxProfit := clientMaxProfit(candidates, mlMin, mlMax)

	return adScore(scoreInput{
		campaign:    *campaign,
		rawScore:    rawScore,
		mlMin:       mlMin,
		mlMax:       mlMax,
		impressions: impressions,
		clicks:      clicks,
		maxProfit:   maxProfit,
	}, true), nil
}

// IngestScore upserts a relevance score and refreshes the normalization
// cache so subsequent requests see the new range.
func (u *AdUseCase) IngestScore(ctx context.Context, clientID, advertiserID uuid.UUID, score int) error {
	client, err := u.repo.GetClient(ctx, clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return port.ErrClientNotFound
	}
	advertiser, err := u.repo.GetAdvertiser(ctx, advertiserID)
	if err != nil {
		return err
	}
	if advertiser == nil {
		return port.ErrAdvertiserNotFound
	}

	if err = u.repo.UpsertScore(ctx, domain.Score{
		ClientID:     clientID,
		AdvertiserID: advertiserID,
		Score:        score,
	}); err != nil {
		return err
	}
	u.scores.refresh(ctx)
	return nil
}

// Stats returns aggregate counts for a campaign.
func (u *AdUseCase) Stats(ctx context.Context, campaignID uuid.UUID) (*port.CampaignStats, error) {
	campaign, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, port.ErrCampaignNotFound
	}
	return u.repo.CampaignStats(ctx, campaignID)
}

// clientMaxProfit returns the maximum expected profit over the client's
// eligible candidates, computed with each campaign's own normalized
// relevance. It is the denominator of the revenue multiplier.
func clientMaxProfit(candidates []port.CampaignCandidate, mlMin, mlMax float64) float64 {
	maxProfit := 0.0
	for _, cand := range candidates {
		mlNorm := normalizeRelevance(float64(cand.MLScore), mlMin, mlMax)
		p, _ := profit(cand.Campaign, mlNorm)
		if p > maxProfit {
			maxProfit = p
		}
	}
	return maxProfit
}

// rankCandidates fills in each candidate's composite score (using the
// ranking-time cached counters, no pacing penalty) and sorts best-first.
// Ties are broken by campaign id so the order is deterministic.
func rankCandidates(candidates []port.CampaignCandidate, mlMin, mlMax float64) {
	maxProfit := clientMaxProfit(candidates, mlMin, mlMax)
	for i := range candidates {
		c := &candidates[i]
		c.Score = adScore(scoreInput{
			campaign:    c.Campaign,
			rawScore:    float64(c.MLScore),
			mlMin:       mlMin,
			mlMax:       mlMax,
			impressions: int64(c.Campaign.ImpressionsCount),
			clicks:      int64(c.Campaign.ClicksCount),
			maxProfit:   maxProfit,
		}, false)
	}
	slices.SortStableFunc(candidates, func(a, b port.CampaignCandidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return bytes.Compare(a.Campaign.ID[:], b.Campaign.ID[:])
		}
	})
}
