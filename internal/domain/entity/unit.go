package entity

import "time"

// Unit is a single sellable vehicle instance tracked through the
// purchase/list/sale lifecycle. It references exactly one Vehicle and at
// most one Store, and carries the financial state of the deal.
type Unit struct {
	ID          int64
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
	IsExpired  bool

	VehicleID int64    // required; the catalog record this unit instantiates
	Vehicle   *Vehicle // loaded on demand

	StoreID *int64 // nullable; the store currently holding the unit
	Store   *Store // loaded on demand

	AddedBy     *int64 // user who listed the unit
	PurchasedBy *int64 // user who bought the unit, once sold

	CreatedAt time.Time
	UpdatedAt time.Time
}
