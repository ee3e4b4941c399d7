package domain

import "github.com/google/uuid"

// Campaign gender targeting values. A nil TargetedGender matches any client.
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	TargetAll    = "ALL"
)

// Campaign represents an advertising campaign. Dates are simulated-day
// integers, costs are monetary units per event. ImpressionsCount and
// ClicksCount are running counters maintained by the allocation and click
// recording protocols; they are incremented in the same transaction as the
// corresponding event row.
type Campaign struct {
	ID               uuid.UUID
	AdvertiserID     uuid.UUID
	ImpressionsLimit int
	ClicksLimit      int
	ImpressionsCount int
	ClicksCount      int

	CostPerImpression float64
	CostPerClick      float64

	AdTitle string
	AdText  string

	StartDate int64
	EndDate   int64

	// Targeting attributes. A nil value means "match anything".
	TargetedGender   *string
	TargetedAgeFrom  *int
	TargetedAgeTo    *int
	TargetedLocation *string
}
