// Package model contains the GORM-specific structs mirroring the database
// tables. They stay inside the infrastructure layer; the rest of the
// application only sees domain entities.
package model

import "time"

// StoreModel mirrors the 'stores' table.
type StoreModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(255)"`
	StreetAddress string `gorm:"type:varchar(255)"`
	City          string `gorm:"type:varchar(100)"`
	State         string `gorm:"type:varchar(50)"`
	ZipCode       int
	Phone         string `gorm:"type:varchar(50)"`
	AdminClerk    string `gorm:"type:varchar(255)"`
	IsPrimaryHub  bool   `gorm:"not null;default:false"`
	QBCustomerID  int64 `gorm:"column:qb_customer_id"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Users []*UserModel `gorm:"foreignKey:StoreID"`
	Units []*UnitModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
