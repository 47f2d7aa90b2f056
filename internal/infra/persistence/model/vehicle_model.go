package model

import "time"

// VehicleModel mirrors the 'vehicles' table.
type VehicleModel struct {
	ID                 int64  `gorm:"primaryKey;autoIncrement"`
	Year               int    `gorm:"index"`
	Make               string `gorm:"type:varchar(100);index"`
	Model              string `gorm:"type:varchar(100);index"`
	Trim               string `gorm:"type:varchar(100)"`
	VIN                string `gorm:"column:vin;type:varchar(17);uniqueIndex"`
	Mileage            int
	Color              string `gorm:"type:varchar(50)"`
	Drivetrain         string `gorm:"type:varchar(50)"`
	Transmission       string `gorm:"type:varchar(100)"`
	TransmissionType   string `gorm:"type:varchar(50)"`
	TransmissionSpeeds int
	HighwayMileage     int
	CityMileage        int
	EngineCylinders    int
	Category           string `gorm:"type:varchar(100)"`
	MSRP               int `gorm:"column:msrp"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Units []*UnitModel `gorm:"foreignKey:VehicleID"`
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicles"
}
