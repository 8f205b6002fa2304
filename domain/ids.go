package domain

import (
	"errors"

	"github.com/google/uuid"

	"github.com/authcorp/strongtypes/strong"
)

var errNilID = errors.New("must not be the nil UUID")

type userID struct{}

func (userID) BrandName() string { return "userid" }

func (userID) Validate(v uuid.UUID) error { return notNil(v) }

type orderID struct{}

func (orderID) BrandName() string { return "orderid" }

func (orderID) Validate(v uuid.UUID) error { return notNil(v) }

type tenantID struct{}

func (tenantID) BrandName() string { return "tenantid" }

func (tenantID) Validate(v uuid.UUID) error { return notNil(v) }

func notNil(v uuid.UUID) error {
	if v == uuid.Nil {
		return errNilID
	}
	return nil
}

type (
	UserID   = strong.GUID[userID]
	OrderID  = strong.GUID[orderID]
	TenantID = strong.GUID[tenantID]
)

// GenerateUserID returns a new time-ordered (v7) user identifier.
func GenerateUserID() UserID {
	return strong.NewTimeOrderedGUID[userID]()
}

// GenerateOrderID returns a new time-ordered OrderID.
func GenerateOrderID() OrderID {
	return strong.NewTimeOrderedGUID[orderID]()
}

// GenerateTenantID returns a new time-ordered TenantID.
func GenerateTenantID() TenantID {
	return strong.NewTimeOrderedGUID[tenantID]()
}

// NewUserID validates raw.
func NewUserID(raw uuid.UUID) (UserID, error) {
	return strong.Create[UserID](raw)
}

// NewOrderID validates raw.
func NewOrderID(raw uuid.UUID) (OrderID, error) {
	return strong.Create[OrderID](raw)
}

// NewTenantID validates raw.
func NewTenantID(raw uuid.UUID) (TenantID, error) {
	return strong.Create[TenantID](raw)
}

// MustUserID is NewUserID that panics on invalid input.
func MustUserID(raw uuid.UUID) UserID {
	return must(NewUserID(raw))
}

// MustOrderID is NewOrderID that panics on invalid input.
func MustOrderID(raw uuid.UUID) OrderID {
	return must(NewOrderID(raw))
}

// MustTenantID is NewTenantID that panics on invalid input.
func MustTenantID(raw uuid.UUID) TenantID {
	return must(NewTenantID(raw))
}

// ParseUserID parses and validates s.
func ParseUserID(s string) (UserID, error) {
	return parseValid[UserID](s)
}

// ParseOrderID parses and validates s.
func ParseOrderID(s string) (OrderID, error) {
	return parseValid[OrderID](s)
}

// ParseTenantID parses and validates s.
func ParseTenantID(s string) (TenantID, error) {
	return parseValid[TenantID](s)
}
