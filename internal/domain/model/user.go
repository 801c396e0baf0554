package model

import "strings"

// Role determines which actions a viewer is offered.
type Role string

const (
	RoleCustomer        Role = "USER"
	RoleRestaurantOwner Role = "RESTAURANT_OWNER"
	RoleDeliveryPartner Role = "DELIVERY_PARTNER"
	RoleAdmin           Role = "ADMIN"
)

// ParseRole accepts backend role names and the legacy DELIVERY_BOY alias.
func ParseRole(raw string) (Role, bool) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(raw))); r {
	case RoleCustomer, RoleRestaurantOwner, RoleDeliveryPartner, RoleAdmin:
		return r, true
	case "DELIVERY_BOY":
		return RoleDeliveryPartner, true
	case "CUSTOMER", "":
		return RoleCustomer, true
	default:
		return "", false
	}
}

func (r Role) String() string { return string(r) }

// Credentials are submitted on login.
type Credentials struct {
	Email    string
	Password string
}

// Registration creates a new backend account.
type Registration struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     Role
}

// AuthResult is returned by the backend after login or registration.
type AuthResult struct {
	Token    string
	Name     string
	Email    string
	Role     Role
	ImageURL string
}

// Profile holds editable account details.
type Profile struct {
	ID       int64
	Name     string
	Email    string
	Phone    string
	ImageURL string
	Role     Role
}

// PasswordChange is submitted when updating the account password.
type PasswordChange struct {
	CurrentPassword string
	NewPassword     string
}

// Address is a delivery address.
type Address struct {
	ID          int64
	AddressLine string
	City        string
	State       string
	Pincode     string
	IsDefault   bool
}
