package models

import (
	"time"

	"github.com/google/uuid"
)

type AddressLabel string

const (
	AddressLabelHome  AddressLabel = "home"
	AddressLabelWork  AddressLabel = "work"
	AddressLabelOther AddressLabel = "other"
)

type Address struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	Label       AddressLabel `json:"label"`
	Line1       string       `json:"line1,omitempty"`
	FullAddress string       `json:"full_address"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type CreateAddressRequest struct {
	Label       AddressLabel `json:"label" validate:"required,oneof=home work other"`
	Line1       string       `json:"line1,omitempty"`
	FullAddress string       `json:"full_address" validate:"required,min=5"`
}

type UpdateAddressRequest struct {
	Label       *AddressLabel `json:"label,omitempty" validate:"omitempty,oneof=home work other"`
	Line1       *string       `json:"line1,omitempty"`
	FullAddress *string       `json:"full_address,omitempty" validate:"omitempty,min=5"`
}
