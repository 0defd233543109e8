// Package estimate holds the pure pricing core of the pickup flow: quantity
// clamping, per-selection estimation and grand-total aggregation. Everything
// here is deterministic and side-effect free; callers own persistence and
// session state.
package estimate

import (
	"github.com/shopspring/decimal"

	"github.com/revive-recycling/pickup-platform/internal/models"
)

const (
	// MaxPieceQuantity caps count-based selections (e-waste units).
	MaxPieceQuantity = 20
	// MaxWeightQuantity caps weight-based selections, in kg.
	MaxWeightQuantity = 100
	// MinQuantity is the floor; sub-minimum input is normalized, not rejected.
	MinQuantity = 1
)

// MaxQuantity returns the unit-dependent quantity cap. Callers clamp against
// it so sliders and API writes agree on the same bound.
func MaxQuantity(unit models.Unit) int {
	if unit == models.UnitPiece {
		return MaxPieceQuantity
	}

	return MaxWeightQuantity
}

// ClampQuantity normalizes a requested quantity into [MinQuantity, MaxQuantity(unit)].
// Out-of-range input is a user-input normalization case, never an error.
func ClampQuantity(unit models.Unit, quantity int) int {
	if quantity < MinQuantity {
		return MinQuantity
	}

	if maxQty := MaxQuantity(unit); quantity > maxQty {
		return maxQty
	}

	return quantity
}

// Estimate computes rate * quantity exactly. Quantity below the minimum is
// clamped to it first.
func Estimate(rate decimal.Decimal, quantity int) decimal.Decimal {
	if quantity < MinQuantity {
		quantity = MinQuantity
	}

	return rate.Mul(decimal.NewFromInt(int64(quantity)))
}

// NewSelection snapshots the item's current rate, clamps the quantity for the
// item's unit and computes the estimated amount.
func NewSelection(categoryName string, item models.CatalogItem, quantity int) models.Selection {
	quantity = ClampQuantity(item.Unit, quantity)

	return models.Selection{
		CategoryName:    categoryName,
		ItemID:          item.ID,
		ItemName:        item.Name,
		Unit:            item.Unit,
		Rate:            item.Rate,
		Quantity:        quantity,
		EstimatedAmount: Estimate(item.Rate, quantity),
	}
}

// GrandTotal sums estimated amounts over the selections in order. The sum is
// exact decimal arithmetic; an empty list yields zero.
func GrandTotal(selections []models.Selection) decimal.Decimal {
	total := decimal.Zero

	for _, s := range selections {
		total = total.Add(s.EstimatedAmount)
	}

	return total
}
