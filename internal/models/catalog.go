package models

import "github.com/shopspring/decimal"

// Unit is the closed set of measurement units a catalog item can be priced in.
type Unit string

const (
	UnitKg    Unit = "kg"
	UnitPiece Unit = "piece"
)

// CatalogItem is one scrap type with its per-unit rate. Items are immutable
// once loaded; rate changes land as new catalog rows, never as in-place edits
// of selections already made against the old rate.
type CatalogItem struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name"`
	Rate       decimal.Decimal `json:"rate"`
	Unit       Unit            `json:"unit"`
	SortOrder  int             `json:"-"`
}

// Category groups catalog items. Ordering is the declared sort order from the
// rate card, not alphabetical.
type Category struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	SortOrder int           `json:"-"`
	Items     []CatalogItem `json:"items"`
}

type CatalogResponse struct {
	Categories []Category `json:"categories"`
}
