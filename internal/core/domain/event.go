package domain

import "github.com/google/uuid"

// Impression is a record of an ad being shown to a client. At most one
// impression exists per (client, campaign) pair for the lifetime of the
// campaign; the unique index on that pair is the sole concurrency control
// for allocation.
type Impression struct {
	ID           int64
	ClientID     uuid.UUID
	CampaignID   uuid.UUID
	AdvertiserID uuid.UUID
	Day          int64
	Cost         float64
}

// Click is a record of a click event. A click requires a prior impression
// for the same (client, campaign) pair. A client may click again on a later
// day; repeated clicks within one day are deduplicated.
type Click struct {
	ID           int64
	ClientID     uuid.UUID
	CampaignID   uuid.UUID
	AdvertiserID uuid.UUID
	Day          int64
	Cost         float64
}
