package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"adserve/internal/core/domain"
)

// Seed inserts demo advertisers, clients, campaigns and relevance scores so
// a fresh instance can serve ads. All inserts are idempotent.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	locations := []string{"Moscow", "Berlin", "Yerevan"}
	genders := []string{domain.GenderMale, domain.GenderFemale}

	advertiserIDs := make([]uuid.UUID, 0, 3)
	for i := 1; i <= 3; i++ {
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("advertiser-%d", i)))
		advertiserIDs = append(advertiserIDs, id)
		_, err := pool.Exec(ctx, `INSERT INTO advertisers (id, name)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, id, fmt.Sprintf("Advertiser %d", i))
		if err != nil {
			return err
		}
	}

	clientIDs := make([]uuid.UUID, 0, 20)
	for i := 1; i <= 20; i++ {
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("client-%d", i)))
		clientIDs = append(clientIDs, id)
		_, err := pool.Exec(ctx, `INSERT INTO clients (id, login, age, location, gender)
VALUES ($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING`,
			id, fmt.Sprintf("user-%d", i), 18+r.Intn(40),
			locations[r.Intn(len(locations))], genders[r.Intn(len(genders))])
		if err != nil {
			return err
		}
	}

	for i := 1; i <= 9; i++ {
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("campaign-%d", i)))
		advertiserID := advertiserIDs[(i-1)%len(advertiserIDs)]
		var targetedGender *string
		if i%3 == 0 {
			g := genders[r.Intn(len(genders))]
			targetedGender = &g
		}
		var targetedLocation *string
		if i%4 == 0 {
			loc := locations[r.Intn(len(locations))]
			targetedLocation = &loc
		}
		_, err := pool.Exec(ctx, `INSERT INTO campaigns
    (id, advertiser_id, impressions_limit, clicks_limit, cost_per_impression,
     cost_per_click, ad_title, ad_text, start_date, end_date, targeted_gender,
     targeted_location)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12) ON CONFLICT DO NOTHING`,
			id, advertiserID, 1000, 100,
			0.5+r.Float64(), 2.0+3*r.Float64(),
			fmt.Sprintf("Campaign %d", i), fmt.Sprintf("Demo ad text %d", i),
			1, 30, targetedGender, targetedLocation)
		if err != nil {
			return err
		}
	}

	for _, clientID := range clientIDs {
		for _, advertiserID := range advertiserIDs {
			_, err := pool.Exec(ctx, `INSERT INTO scores (client_id, advertiser_id, score)
VALUES ($1, $2, $3)
ON CONFLICT (client_id, advertiser_id) DO NOTHING`,
				clientID, advertiserID, 1+r.Intn(100))
			if err != nil {
				return err
			}
		}
	}
	return nil
}
