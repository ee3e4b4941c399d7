package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adserve/internal/core/domain"
	"adserve/internal/core/port"
)

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
// Uniqueness constraints on the impressions and clicks tables are the sole
// concurrency-control mechanism; no advisory locks are taken.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

const campaignColumns = `id, advertiser_id, impressions_limit, clicks_limit,
impressions_count, clicks_count, cost_per_impression, cost_per_click,
ad_title, ad_text, start_date, end_date,
targeted_gender, targeted_age_from, targeted_age_to, targeted_location`

func scanCampaign(row pgx.Row, c *domain.Campaign) error {
	return row.Scan(
		&c.ID,
		&c.AdvertiserID,
		&c.ImpressionsLimit,
		&c.ClicksLimit,
		&c.ImpressionsCount,
		&c.ClicksCount,
		&c.CostPerImpression,
		&c.CostPerClick,
		&c.AdTitle,
		&c.AdText,
		&c.StartDate,
		&c.EndDate,
		&c.TargetedGender,
		&c.TargetedAgeFrom,
		&c.TargetedAgeTo,
		&c.TargetedLocation,
	)
}

// EligibleCampaigns returns campaigns matching the client on the given day.
// All targeting predicates are conjunctive; a NULL targeting attribute
// matches anything. Campaigns already shown to the client or with exhausted
// counters are excluded. The client's raw relevance score per advertiser is
// fetched in the same query (0 when absent).
func (r *AdRepository) EligibleCampaigns(ctx context.Context, client domain.Client, day int64) ([]port.CampaignCandidate, error) {
	query := `
        SELECT
            c.id,
            c.advertiser_id,
            c.impressions_limit,
            c.clicks_limit,
            c.impressions_count,
            c.clicks_count,
            c.cost_per_impression,
            c.cost_per_click,
            c.ad_title,
            c.ad_text,
            c.start_date,
            c.end_date,
            c.targeted_gender,
            c.targeted_age_from,
            c.targeted_age_to,
            c.targeted_location,
            COALESCE(s.score, 0)
        FROM campaigns c
        LEFT JOIN scores s ON s.advertiser_id = c.advertiser_id AND s.client_id = $1
        WHERE c.start_date <= $2 AND c.end_date >= $2
          AND (c.targeted_gender IS NULL OR c.targeted_gender = 'ALL' OR c.targeted_gender = $3)
          AND (c.targeted_age_from IS NULL OR c.targeted_age_from <= $4)
          AND (c.targeted_age_to IS NULL OR c.targeted_age_to >= $4)
          AND (c.targeted_location IS NULL OR c.targeted_location = $5)
          AND c.impressions_count < c.impressions_limit
          AND c.clicks_count < c.clicks_limit
          AND NOT EXISTS (
              SELECT 1 FROM impressions i
              WHERE i.client_id = $1 AND i.campaign_id = c.id
          )`
	rows, err := r.pool.Query(ctx, query, client.ID, day, client.Gender, client.Age, client.Location)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.CampaignCandidate, error) {
		var cand port.CampaignCandidate
		err := row.Scan(
			&cand.Campaign.ID,
			&cand.Campaign.AdvertiserID,
			&cand.Campaign.ImpressionsLimit,
			&cand.Campaign.ClicksLimit,
			&cand.Campaign.ImpressionsCount,
			&cand.Campaign.ClicksCount,
			&cand.Campaign.CostPerImpression,
			&cand.Campaign.CostPerClick,
			&cand.Campaign.AdTitle,
			&cand.Campaign.AdText,
			&cand.Campaign.StartDate,
			&cand.Campaign.EndDate,
			&cand.Campaign.TargetedGender,
			&cand.Campaign.TargetedAgeFrom,
			&cand.Campaign.TargetedAgeTo,
			&cand.Campaign.TargetedLocation,
			&cand.MLScore,
		)
		return cand, err
	})
}

// CreateImpression inserts an impression for a (client, campaign) pair and
// increments the campaign's impression counter in the same transaction. A
// conflicting concurrent insert is reported as created=false with no error;
// nothing is written in that case.
func (r *AdRepository) CreateImpression(ctx context.Context, imp domain.Impression) (created bool, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil || !created {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `INSERT INTO impressions (client_id, campaign_id, advertiser_id, day, cost)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (client_id, campaign_id) DO NOTHING`,
		imp.ClientID, imp.CampaignID, imp.AdvertiserID, imp.Day, imp.Cost)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns SET impressions_count = impressions_count + 1 WHERE id = $1`, imp.CampaignID)
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateClick inserts a click and increments the campaign's click counter in
// the same transaction. The counter is only bumped when the row was actually
// inserted, so a repeated same-day click cannot drift the counter away from
// the row count.
func (r *AdRepository) CreateClick(ctx context.Context, click domain.Click) (created bool, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil || !created {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `INSERT INTO clicks (client_id, campaign_id, advertiser_id, day, cost)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (client_id, campaign_id, day) DO NOTHING`,
		click.ClientID, click.CampaignID, click.AdvertiserID, click.Day, click.Cost)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns SET clicks_count = clicks_count + 1 WHERE id = $1`, click.CampaignID)
	if err != nil {
		return false, err
	}
	return true, nil
}

// HasImpression reports whether an impression exists for the pair.
func (r *AdRepository) HasImpression(ctx context.Context, clientID, campaignID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (
    SELECT 1 FROM impressions WHERE client_id = $1 AND campaign_id = $2
)`, clientID, campaignID).Scan(&exists)
	return exists, err
}

// ScoreRange returns the global min and max relevance score, both 0 when no
// score rows exist.
func (r *AdRepository) ScoreRange(ctx context.Context) (int, int, error) {
	var minScore, maxScore int
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(MIN(score), 0), COALESCE(MAX(score), 0) FROM scores`).
		Scan(&minScore, &maxScore)
	return minScore, maxScore, err
}

// UpsertScore stores a relevance score; the latest write per pair wins.
func (r *AdRepository) UpsertScore(ctx context.Context, score domain.Score) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO scores (client_id, advertiser_id, score)
VALUES ($1, $2, $3)
ON CONFLICT (client_id, advertiser_id) DO UPDATE SET score = EXCLUDED.score`,
		score.ClientID, score.AdvertiserID, score.Score)
	return err
}

// GetScore returns the raw relevance score for the pair, 0 when absent.
func (r *AdRepository) GetScore(ctx context.Context, clientID, advertiserID uuid.UUID) (int, error) {
	var score int
	err := r.pool.QueryRow(ctx, `SELECT score FROM scores WHERE client_id = $1 AND advertiser_id = $2`,
		clientID, advertiserID).Scan(&score)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return score, nil
}

// CountEvents returns fresh impression and click row counts for a campaign.
func (r *AdRepository) CountEvents(ctx context.Context, campaignID uuid.UUID) (int64, int64, error) {
	var impressions, clicks int64
	err := r.pool.QueryRow(ctx, `SELECT
    (SELECT count(*) FROM impressions WHERE campaign_id = $1),
    (SELECT count(*) FROM clicks WHERE campaign_id = $1)`, campaignID).
		Scan(&impressions, &clicks)
	return impressions, clicks, err
}

// CampaignStats returns aggregate counts and spend for a campaign.
func (r *AdRepository) CampaignStats(ctx context.Context, campaignID uuid.UUID) (*port.CampaignStats, error) {
	var stats port.CampaignStats
	err := r.pool.QueryRow(ctx, `SELECT
    (SELECT count(*) FROM impressions WHERE campaign_id = $1),
    (SELECT count(*) FROM clicks WHERE campaign_id = $1),
    (SELECT COALESCE(sum(cost), 0) FROM impressions WHERE campaign_id = $1),
    (SELECT COALESCE(sum(cost), 0) FROM clicks WHERE campaign_id = $1)`, campaignID).
		Scan(&stats.ImpressionsCount, &stats.ClicksCount, &stats.SpentImpressions, &stats.SpentClicks)
	if err != nil {
		return nil, err
	}
	stats.SpentTotal = stats.SpentImpressions + stats.SpentClicks
	if stats.ImpressionsCount > 0 {
		stats.Conversion = float64(stats.ClicksCount) / float64(stats.ImpressionsCount) * 100
	}
	return &stats, nil
}

// GetClient returns a client by id, or nil when it does not exist.
func (r *AdRepository) GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	var c domain.Client
	err := r.pool.QueryRow(ctx, `SELECT id, login, age, location, gender FROM clients WHERE id = $1`, id).
		Scan(&c.ID, &c.Login, &c.Age, &c.Location, &c.Gender)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAdvertiser returns an advertiser by id, or nil when it does not exist.
func (r *AdRepository) GetAdvertiser(ctx context.Context, id uuid.UUID) (*domain.Advertiser, error) {
	var a domain.Advertiser
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM advertisers WHERE id = $1`, id).
		Scan(&a.ID, &a.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetCampaign returns a campaign by id, or nil when it does not exist.
func (r *AdRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var c domain.Campaign
	err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id), &c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
