package entity

import "time"

// Vehicle is the catalog description of a car: make, model, trim and the
// attributes buyers filter on. Exactly one Unit references a Vehicle in
// practice, though the relation is modeled one-to-many for generality.
type Vehicle struct {
	ID                 int64
	Year               int
	Make               string
	Model              string
	Trim               string
	VIN                string
	Mileage            int
	Color              string
	Drivetrain         string
	Transmission       string
	TransmissionType   string
	TransmissionSpeeds int
	HighwayMileage     int
	CityMileage        int
	EngineCylinders    int
	Category           string
	MSRP               int

	Units []*Unit // loaded on demand

	CreatedAt time.Time
	UpdatedAt time.Time
}
