package model

import "time"

// UserModel mirrors the 'users' table. There is deliberately no plaintext
// password column; only the derived hash is ever persisted.
type UserModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	FirstName      string `gorm:"type:varchar(100);index"`
	LastName       string `gorm:"type:varchar(100);index"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username       string `gorm:"type:varchar(100);uniqueIndex;not null"`
	HashedPassword string `gorm:"type:varchar(255)"`
	PhoneNumber    string `gorm:"type:varchar(50);uniqueIndex"`
	TwilioOptIn    bool   `gorm:"not null;default:false"`
	IsActive       bool   `gorm:"not null;default:false"`
	IsBuyer        bool   `gorm:"not null;default:false"`
	Confirmed      bool   `gorm:"not null;default:false"`
	IsBlocked      bool   `gorm:"not null;default:false"`
	IsAdmin        bool   `gorm:"not null;default:false"`
	IsSuperuser    bool   `gorm:"not null;default:false"`
	StoreID        *int64 `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Store *StoreModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
