package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"adserve/internal/core/domain"
	"adserve/internal/core/port"
	"adserve/internal/core/port/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCandidate(idByte byte, mlScore int) port.CampaignCandidate {
	cand := port.CampaignCandidate{MLScore: mlScore}
	cand.Campaign.ID[15] = idByte
	cand.Campaign.AdvertiserID[15] = idByte
	cand.Campaign.ImpressionsLimit = 100
	cand.Campaign.ClicksLimit = 10
	cand.Campaign.CostPerImpression = 0.5
	cand.Campaign.CostPerClick = 5.0
	cand.Campaign.AdTitle = "title"
	cand.Campaign.AdText = "text"
	return cand
}

func impressionFor(campaignID uuid.UUID) interface{} {
	return mock.MatchedBy(func(imp domain.Impression) bool {
		return imp.CampaignID == campaignID
	})
}

// TestSelectAdPicksHighestScore ensures the usecase reserves the campaign
// with the best composite score.
func TestSelectAdPicksHighestScore(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	days := mocks.NewMockDayProvider(t)

	client := domain.Client{ID: uuid.New(), Age: 30, Location: "Berlin", Gender: domain.GenderMale}
	strong := newCandidate(2, 90)
	weak := newCandidate(1, 10)

	repo.EXPECT().GetClient(mock.Anything, client.ID).Return(&client, nil)
	days.EXPECT().CurrentDay(mock.Anything).Return(int64(1), nil)
	repo.EXPECT().ScoreRange(mock.Anything).Return(1, 100, nil)
	repo.EXPECT().EligibleCampaigns(mock.Anything, client, int64(1)).
		Return([]port.CampaignCandidate{weak, strong}, nil)
	repo.EXPECT().CreateImpression(mock.Anything, impressionFor(strong.Campaign.ID)).Return(true, nil)

	svc := NewAdUseCase(repo, days, testLogger())

	resp, err := svc.SelectAd(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("SelectAd error: %v", err)
	}
	if resp.AdID != strong.Campaign.ID {
		t.Fatalf("expected campaign %v, got %v", strong.Campaign.ID, resp.AdID)
	}
	if resp.AdvertiserID != strong.Campaign.AdvertiserID {
		t.Fatalf("unexpected advertiser id %v", resp.AdvertiserID)
	}
}

// TestSelectAdRetriesOnConflict ensures a lost insert race falls through to
// the next ranked candidate.
func TestSelectAdRetriesOnConflict(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	days := mocks.NewMockDayProvider(t)

	client := domain.Client{ID: uuid.New(), Age: 25, Location: "Moscow", Gender: domain.GenderFemale}
	strong := newCandidate(2, 90)
	weak := newCandidate(1, 10)

	repo.EXPECT().GetClient(mock.Anything, client.ID).Return(&client, nil)
	days.EXPECT().CurrentDay(mock.Anything).Return(int64(4), nil)
	repo.EXPECT().ScoreRange(mock.Anything).Return(1, 100, nil)
	repo.EXPECT().EligibleCampaigns(mock.Anything, client, int64(4)).
		Return([]port.CampaignCandidate{weak, strong}, nil)
	// a concurrent request already reserved the top candidate
	repo.EXPECT().CreateImpression(mock.Anything, impressionFor(strong.Campaign.ID)).Return(false, nil)
	repo.EXPECT().CreateImpression(mock.Anything, impressionFor(weak.Campaign.ID)).Return(true, nil)

	svc := NewAdUseCase(repo, days, testLogger())

	resp, err := svc.SelectAd(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("SelectAd error: %v", err)
	}
	if resp.AdID != weak.Campaign.ID {
		t.Fatalf("expected fallback campaign %v, got %v", weak.Campaign.ID, resp.AdID)
	}
}

func TestSelectAdNoEligibleCampaigns(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	days := mocks.NewMockDayProvider(t)

	client := domain.Client{ID: uuid.New(), Age: 24, Location: "Berlin", Gender: domain.GenderMale}

	repo.EXPECT().GetClient(mock.Anything, client.ID).Return(&client, nil)
	days.EXPECT().CurrentDay(mock.Anything).Return(int64(1), nil)
	repo.EXPECT().ScoreRange(mock.Anything).Return(1, 100, nil)
	repo.EXPECT().EligibleCampaigns(mock.Anything, client, int64(1)).
		Return([]port.CampaignCandidate{}, nil)

	svc := NewAdUseCase(repo, days, testLogger())

	if _, err := svc.SelectAd(context.Background(), client.ID); err != port.ErrNoRelevantAds {
		t.Fatalf("expected ErrNoRelevantAds, got %v", err)
	}
}

func TestSelectAdAllAttemptsLost(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	days := mocks.NewMockDayProvider(t)

	client := domain.Client{ID: uuid.New(), Age: 40, Location: "Yerevan", Gender: domain.GenderMale}
	only := newCandidate(1, 50)

	repo.EXPECT().GetClient(mock.Anything, client.ID).Return(&client, nil)
	days.EXPECT().CurrentDay(mock.Anything).Return(int64(2), nil)
	repo.EXPECT().ScoreRange(mock.Anything).Return(1, 100, nil)
	repo.EXPECT().EligibleCampaigns(mock.Anything, client, int64(2)).
		Return([]port.CampaignCandidate{only}, nil)
	repo.EXPECT().CreateImpression(mock.Anything, impressionFor(only.Campaign.ID)).Return(false, nil)

	svc := NewAdUseCase(repo, days, testLogger())

	if _, err := svc.SelectAd(context.Background(), client.ID); err != port.ErrNoAdsAvailable {
		t.Fatalf("expected ErrNoAdsAvailable, got %v", err)
	}
}

func TestSelectAdUnknownClient(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	days := mocks.NewMockDayProvider(t)

	clientID := uuid.New()
	repo.EXPECT().GetClient(mock.Anything, clientID).Return(nil, nil)

	svc := NewAdUseCase(repo, days, testLogger())

	if _, err := svc.SelectAd(context.Background(), clientID); err != port.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

// TestConcurrentAllocationSingleImpression ensures that N racing requests
// for the same client and campaign produce exactly one impression. The mock
// repository emulates the unique index on (client_id, campaign_id).
func TestConcurrentAllocationSingleImpression(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	days := mocks.NewMockDayProvider(t)

	client := domain.Client{ID: uuid.New(), Age: 33, Location: "Berlin", Gender: domain.GenderFemale}
	only := newCandidate(7, 80)

	repo.EXPECT().GetClient(mock.Anything, client.ID).Return(&client, nil)
	days.EXPECT().CurrentDay(mock.Anything).Return(int64(1), nil)
	repo.EXPECT().ScoreRange(mock.Anything).Return(1, 100, nil)
	repo.EXPECT().EligibleCampaigns(mock.Anything, client, int64(1)).
		Return([]port.CampaignCandidate{only}, nil)

	var (
		mu       sync.Mutex
		inserted = map[[2]uuid.UUID]bool{}
	)
	repo.EXPECT().CreateImpression(mock.Anything, mock.AnythingOfType("domain.Impression")).
		RunAndReturn(func(_ context.Context, imp domain.Impression) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			key := [2]uuid.UUID{imp.ClientID, imp.CampaignID}
			if inserted[key] {
				return false, nil
			}
			inserted[key] = true
			return true, nil
		})

	svc := NewAdUseCase(repo, days, testLogger())

	const requests = 10
	var (
		wg        sync.WaitGroup
		resultsMu sync.Mutex
		allocated int
		exhausted int
	)
	wg.Add(requests)
	for i := 0; i < requests; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.SelectAd(context.Background(), client.ID)
			resultsMu.Lock()
			defer resultsMu.Unlock()
			switch err {
			case nil:
				allocated++
			case port.ErrNoAdsAvailable:
				exhausted++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if allocated != 1 {
		t.Fatalf("expected exactly one allocation, got %d", allocated)
	}
	if exhausted != requests-1 {
		t.Fatalf("expected %d exhausted requests, got %d", requests-1, exhausted)
	}
	if len(inserted) != 1 {
		t.Fatalf("expected one impression row, got %d", len(inserted))
	}
}

// TestRecordClickWithoutImpression ensures a click is rejected when the
// client was never shown the campaign.
func TestRecordClickWithoutImpression(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	days := mocks.NewMockDayProvider(t)

	client := domain.Client{ID: uuid.New(), Age: 20, Location: "Moscow", Gender: domain.GenderMale}
	campaign := newCandidate(3, 10).Campaign

	repo.EXPECT().GetClient(mock.Anything, client.ID).Return(&client, nil)
	repo.EXPECT().GetCampaign(mock.Anything, campaign.ID).Return(&campaign, nil)
	repo.EXPECT().HasImpression(mock.Anything, client.ID, campaign.ID).Return(false, nil)

	svc := NewAdUseCase(repo, days, testLogger())

	err := svc.RecordClick(context.Background(), client.ID, campaign.ID)
	if err != port.ErrNoImpression {
		t.Fatalf("expected ErrNoImpression, got %v", err)
	}
}

func TestRecordClick(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	days := mocks.NewMockDayProvider(t)

	client := domain.Client{ID: uuid.New(), Age: 20, Location: "Moscow", Gender: domain.GenderMale}
	campaign := newCandidate(3, 10).Campaign

	repo.EXPECT().GetClient(mock.Anything, client.ID).Return(&client, nil)
	repo.EXPECT().GetCampaign(mock.Anything, campaign.ID).Return(&campaign, nil)
	repo.EXPECT().HasImpression(mock.Anything, client.ID, campaign.ID).Return(true, nil)
	days.EXPECT().CurrentDay(mock.Anything).Return(int64(5), nil)
	repo.EXPECT().CreateClick(mock.Anything, mock.MatchedBy(func(c domain.Click) bool {
		return c.CampaignID == campaign.ID && c.Day == 5 && c.Cost == campaign.CostPerClick
	})).Return(true, nil)

	svc := NewAdUseCase(repo, days, testLogger())

	if err := svc.RecordClick(context.Background(), client.ID, campaign.ID); err != nil {
		t.Fatalf("RecordClick error: %v", err)
	}
}

func TestRecordClickUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	days := mocks.NewMockDayProvider(t)

	client := domain.Client{ID: uuid.New(), Age: 20, Location: "Moscow", Gender: domain.GenderMale}
	campaignID := uuid.New()

	repo.EXPECT().GetClient(mock.Anything, client.ID).Return(&client, nil)
	repo.EXPECT().GetCampaign(mock.Anything, campaignID).Return(nil, nil)

	svc := NewAdUseCase(repo, days, testLogger())

	if err := svc.RecordClick(context.Background(), client.ID, campaignID); err != port.ErrCampaignNotFound {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

// TestCampaignScoreExhaustedCampaign ensures the diagnostic score collapses
// to zero once the impression budget is spent, regardless of relevance.
func TestCampaignScoreExhaustedCampaign(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	days := mocks.NewMockDayProvider(t)

	client := domain.Client{ID: uuid.New(), Age: 28, Location: "Berlin", Gender: domain.GenderMale}
	campaign := newCandidate(4, 95).Campaign

	repo.EXPECT().GetCampaign(mock.Anything, campaign.ID).Return(&campaign, nil)
	repo.EXPECT().GetClient(mock.Anything, client.ID).Return(&client, nil)
	repo.EXPECT().CountEvents(mock.Anything, campaign.ID).
		Return(int64(campaign.ImpressionsLimit), int64(0), nil)
	repo.EXPECT().ScoreRange(mock.Anything).Return(1, 100, nil)
	repo.EXPECT().GetScore(mock.Anything, client.ID, campaign.AdvertiserID).Return(95, nil)
	days.EXPECT().CurrentDay(mock.Anything).Return(int64(1), nil)
	repo.EXPECT().EligibleCampaigns(mock.Anything, client, int64(1)).
		Return(nil, nil)

	svc := NewAdUseCase(repo, days, testLogger())

	score, err := svc.CampaignScore(context.Background(), client.ID, campaign.ID)
	if err != nil {
		t.Fatalf("CampaignScore error: %v", err)
	}
	if score != 0 {
		t.Fatalf("expected zero score for exhausted campaign, got %f", score)
	}
}

// TestIngestScoreRefreshesRange ensures a score write triggers a
// normalization cache refresh.
func TestIngestScoreRefreshesRange(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	days := mocks.NewMockDayProvider(t)

	client := domain.Client{ID: uuid.New(), Age: 22, Location: "Moscow", Gender: domain.GenderFemale}
	advertiser := domain.Advertiser{ID: uuid.New(), Name: "acme"}

	repo.EXPECT().GetClient(mock.Anything, client.ID).Return(&client, nil)
	repo.EXPECT().GetAdvertiser(mock.Anything, advertiser.ID).Return(&advertiser, nil)
	repo.EXPECT().UpsertScore(mock.Anything, domain.Score{
		ClientID:     client.ID,
		AdvertiserID: advertiser.ID,
		Score:        42,
	}).Return(nil)
	repo.EXPECT().ScoreRange(mock.Anything).Return(42, 42, nil).Once()

	svc := NewAdUseCase(repo, days, testLogger())

	if err := svc.IngestScore(context.Background(), client.ID, advertiser.ID, 42); err != nil {
		t.Fatalf("IngestScore error: %v", err)
	}
}
