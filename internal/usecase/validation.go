package usecase

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/foodfront/internal/domain/errors"
	"github.com/polkiloo/foodfront/internal/domain/model"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domainErrors.ErrValidation, fmt.Sprintf(format, args...))
}

// ValidatePincode accepts postal codes of 3 to 10 digits.
func ValidatePincode(pincode string) bool {
	if len(pincode) < 3 || len(pincode) > 10 {
		return false
	}
	for _, r := range pincode {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ValidateEmail reports whether the address parses as a bare mailbox.
func ValidateEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func normalizeCredentials(creds model.Credentials) (model.Credentials, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return creds, invalid("email and password are required")
	}
	return creds, nil
}

func normalizeRegistration(reg model.Registration) (model.Registration, error) {
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Phone = strings.TrimSpace(reg.Phone)
	if reg.Name == "" {
		return reg, invalid("name is required")
	}
	if !ValidateEmail(reg.Email) {
		return reg, invalid("invalid email %q", reg.Email)
	}
	if len(reg.Password) < 6 {
		return reg, invalid("password must be at least 6 characters")
	}
	if reg.Role == "" {
		return reg, nil
	}
	role, ok := model.ParseRole(string(reg.Role))
	if !ok || role == model.RoleAdmin {
		return reg, invalid("role %q cannot be registered", reg.Role)
	}
	reg.Role = role
	return reg, nil
}

func normalizeAddress(a model.Address) (model.Address, error) {
	a.AddressLine = strings.TrimSpace(a.AddressLine)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.Pincode = strings.TrimSpace(a.Pincode)
	if a.AddressLine == "" || a.City == "" {
		return a, invalid("address line and city are required")
	}
	if !ValidatePincode(a.Pincode) {
		return a, invalid("invalid pincode %q", a.Pincode)
	}
	return a, nil
}

func normalizeMenuItem(item model.MenuItem) (model.MenuItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Category = strings.TrimSpace(item.Category)
	if item.Name == "" {
		return item, invalid("menu item name is required")
	}
	if !item.Price.GreaterThan(decimal.Zero) {
		return item, invalid("price must be positive")
	}
	return item, nil
}

func normalizeRestaurant(r model.Restaurant) (model.Restaurant, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Address = strings.TrimSpace(r.Address)
	r.CuisineType = strings.TrimSpace(r.CuisineType)
	if r.Name == "" || r.Address == "" {
		return r, invalid("restaurant name and address are required")
	}
	if r.DeliveryTime < 0 {
		return r, invalid("delivery time cannot be negative")
	}
	return r, nil
}
