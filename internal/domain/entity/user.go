package entity

import "time"

// User is a staff account. Role and status are independent boolean flags
// rather than an enum, mirroring how the dealership operates: a buyer can
// also be an admin, a blocked account can still be confirmed, and so on.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Username  string

	// Password is the transient plaintext credential carried only on the
	// creation path. It is never persisted; the registration flow replaces
	// it with HashedPassword before any write.
	Password string

	// HashedPassword is the only persisted secret.
	HashedPassword string

	PhoneNumber string
	TwilioOptIn bool

	IsActive    bool
	IsBuyer     bool
	Confirmed   bool
	IsBlocked   bool
	IsAdmin     bool
	IsSuperuser bool

	StoreID *int64 // nullable; a user may be unassigned
	Store   *Store // loaded on demand

	CreatedAt time.Time
	UpdatedAt time.Time
}
