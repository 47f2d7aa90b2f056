package model

import "time"

// UnitModel mirrors the 'units' table.
type UnitModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	StockNumber string `gorm:"type:varchar(50);index"`

	PurchaseDate *time.Time
	ListDate     *time.Time
	SoldDate     *time.Time
	ExpireDate   *time.Time `gorm:"index"`

	PurchasePrice          int    `gorm:"not null;default:0"`
	BuyNowPrice            int    `gorm:"not null;default:0"`
	VehicleAge             int    `gorm:"not null;default:0"`
	TransportationFee      int    `gorm:"not null;default:0"`
	TransportationDistance int    `gorm:"not null;default:0"`
	TransportCompany       string `gorm:"type:varchar(255);default:'N/A'"`
	VehicleCost            int    `gorm:"not null;default:0"`
	MaxOfferValue          int    `gorm:"column:maxoffer_value;not null;default:0"`
	MaxOfferClock          int    `gorm:"column:maxoffer_clock;not null;default:0"`
	CDKDealNumber          int    `gorm:"column:cdk_deal_number;not null;default:0"`
	RetailWholesale        string `gorm:"type:varchar(50);default:'Retail'"`
	RetailFrontGross       int    `gorm:"not null;default:0"`
	RetailBackGross        int    `gorm:"not null;default:0"`
	WholesaleGross         int    `gorm:"not null;default:0"`
	TotalRetailGross       int    `gorm:"not null;default:0"`
	ZipCodeLoc             int    `gorm:"not null;default:0"`
	DeliveryStatus         string `gorm:"type:varchar(50);default:'N/A'"`
	BuyFee                 int    `gorm:"not null;default:250"`

	SoldStatus bool `gorm:"not null;default:false"`
	Purchased  bool `gorm:"not null;default:false"`
	IsExpired  bool `gorm:"not null;default:false;index"`

	VehicleID int64  `gorm:"not null;index"`
	StoreID   *int64 `gorm:"index"`

	AddedBy     *int64
	PurchasedBy *int64

	CreatedAt time.Time
	UpdatedAt time.Time

	Vehicle *VehicleModel `gorm:"foreignKey:VehicleID"`
	Store   *StoreModel   `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (UnitModel) TableName() string {
	return "units"
}
