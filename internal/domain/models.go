package domain

import (
	"time"

	"github.com/google/uuid"
)

// Company is the tenant root: every other entity is scoped to exactly one company
type Company struct {
	ID     uuid.UUID
	Name   string
	Domain string
	Avatar *string
}

// User belongs to one company; email is unique within the company
type User struct {
	ID        uuid.UUID
	Name      string
	Surname   string
	Email     string
	Password  string
	Avatar    *string
	Role      Role
	CompanyID uuid.UUID
}

// Building belongs to one company
type Building struct {
	ID        uuid.UUID
	Address   string
	CompanyID uuid.UUID
}

// CoworkingSpace is a 2D grid of width x height cells inside a building
type CoworkingSpace struct {
	ID         uuid.UUID
	Address    string
	Width      int64
	Height     int64
	BuildingID uuid.UUID
	CompanyID  uuid.UUID
}

// ItemType is a reusable template for placeable items: footprint + bookable flag
type ItemType struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Color       string
	Icon        *string
	Offsets     Offsets
	Bookable    bool
	CompanyID   uuid.UUID
}

// CoworkingItem is a placement of an ItemType at a base point within one space
// Its occupied cells are {BasePoint + offset : offset in type's Offsets}
type CoworkingItem struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	Name        string
	Description *string
	CoworkingID uuid.UUID
	BasePoint   Point
}

// ItemCoordinates pairs a placed item's base point with its type's footprint
type ItemCoordinates struct {
	BasePoint Point
	Offsets   Offsets
}

// Booking reserves one coworking item for [TimeStart, TimeEnd)
type Booking struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	CoworkingSpaceID uuid.UUID
	CoworkingItemID  uuid.UUID
	CompanyID        uuid.UUID
	TimeStart        time.Time
	TimeEnd          time.Time
}

// Duration returns the booking length
func (b *Booking) Duration() time.Duration {
	return b.TimeEnd.Sub(b.TimeStart)
}

// IsOwnedBy returns true if the booking belongs to the given user of the given company
func (b *Booking) IsOwnedBy(userID, companyID uuid.UUID) bool {
	return b.UserID == userID && b.CompanyID == companyID
}

// PublicBooking is the display-safe projection used for QR verification
type PublicBooking struct {
	ID               uuid.UUID
	UserEmail        string
	BuildingAddress  string
	CoworkingAddress string
	ItemName         string
	TimeStart        time.Time
	TimeEnd          time.Time
}

// PendingVerification marks an outstanding guest identity-verification request
type PendingVerification struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
}
