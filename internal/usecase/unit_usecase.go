package usecase

import (
	"context"
	"time"

	"autolot/internal/domain/entity"
)

// UnitFields carries the inventory attributes shared by unit creation and
// replacement.
type UnitFields struct {
	StockNumber string

	PurchaseDate *time.Time
	ListDate     *time.Time
	SoldDate     *time.Time
	ExpireDate   *time.Time

	PurchasePrice          int
	BuyNowPrice            int
	VehicleAge             int
	TransportationFee      int
	TransportationDistance int
	TransportCompany       string
	VehicleCost            int
	MaxOfferValue          int
	MaxOfferClock          int
	CDKDealNumber          int
	RetailWholesale        string
	RetailFrontGross       int
	RetailBackGross        int
	WholesaleGross         int
	TotalRetailGross       int
	ZipCodeLoc             int
	DeliveryStatus         string
	BuyFee                 int

	SoldStatus bool
	Purchased  bool

	StoreID     *int64
	AddedBy     *int64
	PurchasedBy *int64
}

// CreateUnitInput defines the data to list a new unit. The catalog record is
// created alongside the unit in the same transaction.
type CreateUnitInput struct {
	Vehicle VehicleInput
	Unit    UnitFields
}

// UpdateUnitInput defines the data for replacing a unit's fields. The vehicle
// reference is immutable; catalog changes go through VehicleUsecase.
type UpdateUnitInput struct {
	Unit      UnitFields
	IsExpired bool
}

// UnitUsecase defines the business operations on inventory units.
type UnitUsecase interface {
	// CreateUnit persists the vehicle and its unit atomically. An expire
	// date on or before the list date yields ErrValidationFailed.
	CreateUnit(ctx context.Context, input *CreateUnitInput) (*entity.Unit, error)

	// GetUnit fetches a unit by id, or ErrNotFound.
	GetUnit(ctx context.Context, id int64) (*entity.Unit, error)

	// UpdateUnit replaces the unit's fields with the provided values.
	UpdateUnit(ctx context.Context, id int64, input *UpdateUnitInput) (*entity.Unit, error)

	// DeleteUnit removes the unit and its vehicle atomically.
	DeleteUnit(ctx context.Context, id int64) error

	// ListUnits returns units matching the list constraints.
	ListUnits(ctx context.Context, input ListInput) ([]*entity.Unit, error)

	// ExpireUnit forces the unit's expire date to now, making it eligible
	// for the next sweep pass.
	ExpireUnit(ctx context.Context, id int64) (*entity.Unit, error)
}
