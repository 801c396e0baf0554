package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/foodfront/internal/domain/errors"
	"github.com/polkiloo/foodfront/internal/domain/model"
)

func TestValidatePincode(t *testing.T) {
	for _, code := range []string{"560001", "10001", "123"} {
		if !ValidatePincode(code) {
			t.Fatalf("expected pincode %s to be valid", code)
		}
	}
	for _, code := range []string{"", "12", "12a456", "12345678901"} {
		if ValidatePincode(code) {
			t.Fatalf("expected pincode %s to be invalid", code)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if !ValidateEmail("a@example.com") {
		t.Fatal("expected plain address to be valid")
	}
	for _, email := range []string{"", "nobody", "Alice <a@example.com>"} {
		if ValidateEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}

func TestNormalizeAddress(t *testing.T) {
	got, err := normalizeAddress(model.Address{AddressLine: " 1 Main St ", City: " Pune", Pincode: "411001 "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AddressLine != "1 Main St" || got.City != "Pune" || got.Pincode != "411001" {
		t.Fatalf("address not trimmed: %+v", got)
	}

	for _, a := range []model.Address{
		{City: "Pune", Pincode: "411001"},
		{AddressLine: "x", Pincode: "411001"},
		{AddressLine: "x", City: "Pune", Pincode: "abc"},
	} {
		if _, err := normalizeAddress(a); !errors.Is(err, domainErrors.ErrValidation) {
			t.Fatalf("expected validation error for %+v", a)
		}
	}
}

func TestNormalizeMenuItemAndRestaurant(t *testing.T) {
	if _, err := normalizeMenuItem(model.MenuItem{Name: "Dal", Price: decimal.NewFromInt(120)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := normalizeMenuItem(model.MenuItem{Name: "Dal"}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatal("expected zero price to be rejected")
	}
	if _, err := normalizeMenuItem(model.MenuItem{Price: decimal.NewFromInt(1)}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatal("expected missing name to be rejected")
	}

	if _, err := normalizeRestaurant(model.Restaurant{Name: "Spice", Address: "MG Road"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := normalizeRestaurant(model.Restaurant{Name: "Spice"}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatal("expected missing address to be rejected")
	}
	if _, err := normalizeRestaurant(model.Restaurant{Name: "Spice", Address: "x", DeliveryTime: -1}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatal("expected negative delivery time to be rejected")
	}
}
