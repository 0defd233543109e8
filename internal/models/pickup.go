package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Selection is one chosen catalog item within a pickup. Rate is snapshotted
// from the catalog at add time, so later rate-card changes never alter a
// selection that is already in the draft or in a persisted pickup.
type Selection struct {
	CategoryName    string          `json:"category_name"`
	ItemID          string          `json:"item_id"`
	ItemName        string          `json:"item_name"`
	Unit            Unit            `json:"unit"`
	Rate            decimal.Decimal `json:"rate"`
	Quantity        int             `json:"quantity"`
	EstimatedAmount decimal.Decimal `json:"estimated_amount"`
}

type DraftStatus string

const (
	DraftStatusEmpty   DraftStatus = "empty"
	DraftStatusEditing DraftStatus = "editing"
	DraftStatusReady   DraftStatus = "ready"
)

// PickupDraft is the session-scoped scheduling state: form fields plus the
// ordered selection list. It lives in redis under a single per-user key until
// the pickup is submitted or the draft is discarded.
type PickupDraft struct {
	UserID     uuid.UUID   `json:"user_id"`
	Address    string      `json:"address"`
	PickupDate string      `json:"pickup_date"`
	TimeSlot   string      `json:"time_slot"`
	Notes      string      `json:"notes,omitempty"`
	Items      []Selection `json:"items"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Status derives the draft's place in the scheduling flow. It is computed on
// every read, never stored.
func (d *PickupDraft) Status() DraftStatus {
	if d.Address == "" && d.PickupDate == "" && d.TimeSlot == "" && d.Notes == "" && len(d.Items) == 0 {
		return DraftStatusEmpty
	}

	if d.Address != "" && d.PickupDate != "" && d.TimeSlot != "" && len(d.Items) > 0 {
		return DraftStatusReady
	}

	return DraftStatusEditing
}

type UpdateDraftRequest struct {
	Address    *string `json:"address,omitempty" validate:"omitempty,max=500"`
	PickupDate *string `json:"pickup_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TimeSlot   *string `json:"time_slot,omitempty" validate:"omitempty,max=50"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type AddSelectionRequest struct {
	CategoryID string `json:"category_id" validate:"required"`
	ItemID     string `json:"item_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required"`
}

type DraftResponse struct {
	Draft      *PickupDraft    `json:"draft"`
	Status     DraftStatus     `json:"status"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

type PickupStatus string

const (
	PickupStatusScheduled PickupStatus = "scheduled"
	PickupStatusCompleted PickupStatus = "completed"
	PickupStatusCancelled PickupStatus = "cancelled"
)

// Pickup is the finalized, persisted pickup request. Items keep their draft
// insertion order; GrandTotal is the exact decimal sum of their estimated
// amounts.
type Pickup struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	Address    string          `json:"address"`
	PickupDate string          `json:"pickup_date"`
	TimeSlot   string          `json:"time_slot"`
	Notes      string          `json:"notes,omitempty"`
	Items      []Selection     `json:"items"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	Status     PickupStatus    `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
