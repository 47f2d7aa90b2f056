// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Store is a physical or organizational location that owns inventory units
// and employs staff users.
type Store struct {
	ID            int64
	Name          string
	StreetAddress string
	City          string
	State         string
	ZipCode       int
	Phone         string
	AdminClerk    string
	IsPrimaryHub  bool
	QBCustomerID  int64 // external billing (QuickBooks) customer reference

	Users []*User // staff assigned to this store; loaded on demand
	Units []*Unit // units currently held at this store; loaded on demand

	CreatedAt time.Time
	UpdatedAt time.Time
}
