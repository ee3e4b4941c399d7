package port

import (
	"context"

	"github.com/google/uuid"

	"adserve/internal/core/domain"
)

// CampaignCandidate is an eligible campaign together with the requesting
// client's raw relevance score for its advertiser (0 when the client has no
// score row). Score is filled in by the ranking engine.
type CampaignCandidate struct {
	Campaign domain.Campaign
	MLScore  int
	Score    float64
}

// CampaignStats contains simple aggregate counts for one campaign.
type CampaignStats struct {
	ImpressionsCount int64   `json:"impressions_count"`
	ClicksCount      int64   `json:"clicks_count"`
	Conversion       float64 `json:"conversion"`
	SpentImpressions float64 `json:"spent_impressions"`
	SpentClicks      float64 `json:"spent_clicks"`
	SpentTotal       float64 `json:"spent_total"`
}

// AdRepository defines the persistence layer for the ad engine. It is an
// outbound port in hexagonal architecture. Implementations must be
// concurrency-safe; event inserts rely on unique indexes and report whether
// a row was actually created so callers can retry or skip counter updates.
type AdRepository interface {
	// GetClient returns a client by id, or nil when it does not exist.
	GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	// GetAdvertiser returns an advertiser by id, or nil when it does not exist.
	GetAdvertiser(ctx context.Context, id uuid.UUID) (*domain.Advertiser, error)
	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)

	// EligibleCampaigns returns campaigns whose active window contains day,
	// whose targeting matches the client, that the client has not been shown
	// yet and whose counters are below their limits.
	EligibleCampaigns(ctx context.Context, client domain.Client, day int64) ([]CampaignCandidate, error)

	// ScoreRange returns the global minimum and maximum relevance score over
	// all score rows. Both are 0 when no rows exist.
	ScoreRange(ctx context.Context) (min, max int, err error)
	// UpsertScore stores a relevance score; the latest write per
	// (client, advertiser) pair wins.
	UpsertScore(ctx context.Context, score domain.Score) error
	// GetScore returns the raw relevance score for the pair, 0 when absent.
	GetScore(ctx context.Context, clientID, advertiserID uuid.UUID) (int, error)

	// CreateImpression atomically inserts an impression and increments the
	// campaign's impressions counter in the same transaction. It returns
	// false without error when an impression for the (client, campaign)
	// pair already exists.
	CreateImpression(ctx context.Context, imp domain.Impression) (created bool, err error)
	// HasImpression reports whether an impression exists for the pair.
	HasImpression(ctx context.Context, clientID, campaignID uuid.UUID) (bool, error)
	// CreateClick atomically inserts a click and increments the campaign's
	// clicks counter in the same transaction. It returns false without error
	// when a click for the (client, campaign, day) triple already exists.
	CreateClick(ctx context.Context, click domain.Click) (created bool, err error)

	// CountEvents returns fresh row counts of impressions and clicks for a
	// campaign, bypassing the cached counters.
	CountEvents(ctx context.Context, campaignID uuid.UUID) (impressions, clicks int64, err error)
	// CampaignStats returns aggregate counts and spend for a campaign.
	CampaignStats(ctx context.Context, campaignID uuid.UUID) (*CampaignStats, error)
}

// DayProvider supplies the current simulated day. Day advancement is owned
// by an external service; the ad engine only reads it.
type DayProvider interface {
	CurrentDay(ctx context.Context) (int64, error)
}
