package domain

import "github.com/google/uuid"

// Client is a consumer of advertisements. Clients are created and mutated by
// an external bulk-upsert path; the ad engine only reads them.
type Client struct {
	ID       uuid.UUID
	Login    string
	Age      int
	Location string
	Gender   string
}

// Advertiser owns campaigns and relevance scores.
type Advertiser struct {
	ID   uuid.UUID
	Name string
}

// Score is an externally supplied relevance score (1-100) for a
// (client, advertiser) pair. At most one row exists per pair; the latest
// write wins.
type Score struct {
	ClientID     uuid.UUID
	AdvertiserID uuid.UUID
	Score        int
}
