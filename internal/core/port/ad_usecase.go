package port

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Sentinel errors returned by the usecase layer. The HTTP adapter maps them
// to status codes; everything else is treated as an internal error.
var (
	ErrClientNotFound     = errors.New("client not found")
	ErrAdvertiserNotFound = errors.New("advertiser not found")
	ErrCampaignNotFound   = errors.New("campaign not found")

	// ErrNoImpression is returned when a click is attempted without a prior
	// impression for the (client, campaign) pair.
	ErrNoImpression = errors.New("no impression for client and campaign")

	// ErrNoRelevantAds is returned when the eligible candidate set is empty
	// before any allocation attempt.
	ErrNoRelevantAds = errors.New("not relevant ads")
	// ErrNoAdsAvailable is returned when every bounded allocation attempt
	// lost its insert race.
	ErrNoAdsAvailable = errors.New("no new advertisements available")
)

// AdUseCase defines the business operations exposed by the ad engine. This
// interface represents the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type AdUseCase interface {
	// SelectAd picks the best-scoring eligible campaign for the client,
	// records an impression for it and returns the ad payload. It returns
	// ErrNoRelevantAds when nothing is eligible and ErrNoAdsAvailable when
	// all bounded allocation attempts failed.
	SelectAd(ctx context.Context, clientID uuid.UUID) (*AdResponse, error)

	// RecordClick validates that an impression exists for the pair and
	// records a click, incrementing the campaign's click counter on true
	// insert. Returns ErrNoImpression when the client was never shown the ad.
	RecordClick(ctx context.Context, clientID, campaignID uuid.UUID) error

	// CampaignScore computes the pacing-aware diagnostic score for a
	// (client, campaign) pair using freshly counted event rows.
	CampaignScore(ctx context.Context, clientID, campaignID uuid.UUID) (float64, error)

	// IngestScore upserts a relevance score and refreshes the normalization
	// cache.
	IngestScore(ctx context.Context, clientID, advertiserID uuid.UUID, score int) error

	// Stats returns aggregate counts for a campaign.
	Stats(ctx context.Context, campaignID uuid.UUID) (*CampaignStats, error)
}

// AdResponse is the payload returned for a successful allocation. It is a
// DTO used by the HTTP layer and does not contain domain behaviour.
type AdResponse struct {
	AdID         uuid.UUID `json:"ad_id"`
	AdTitle      string    `json:"ad_title"`
	AdText       string    `json:"ad_text"`
	AdvertiserID uuid.UUID `json:"advertiser_id"`
}
