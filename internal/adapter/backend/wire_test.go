package backend

import (
	"encoding/json"
	"testing"
	"time"
)

func TestLocalTimeDecoding(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		valid bool
		want  time.Time
	}{
		{name: "null", raw: `null`},
		{name: "empty string", raw: `""`},
		{name: "iso local", raw: `"2024-03-01T18:45:12"`, valid: true, want: time.Date(2024, 3, 1, 18, 45, 12, 0, backendLocation)},
		{name: "iso fraction", raw: `"2024-03-01T18:45:12.5"`, valid: true, want: time.Date(2024, 3, 1, 18, 45, 12, 500000000, backendLocation)},
		{name: "minutes only", raw: `"2024-03-01T18:45"`, valid: true, want: time.Date(2024, 3, 1, 18, 45, 0, 0, backendLocation)},
		{name: "array", raw: `[2024,3,1,18,45]`, valid: true, want: time.Date(2024, 3, 1, 18, 45, 0, 0, backendLocation)},
		{name: "with offset", raw: `"2024-03-01T18:45:12Z"`, valid: true, want: time.Date(2024, 3, 1, 18, 45, 12, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var lt localTime
			if err := json.Unmarshal([]byte(tc.raw), &lt); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if lt.Valid != tc.valid {
				t.Fatalf("expected valid=%v, got %v", tc.valid, lt.Valid)
			}
			if tc.valid && !lt.Time.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, lt.Time)
			}
			if !tc.valid && lt.ptr() != nil {
				t.Fatal("expected nil pointer for missing time")
			}
		})
	}
}

func TestLocalTimeRejectsGarbage(t *testing.T) {
	var lt localTime
	if err := json.Unmarshal([]byte(`"yesterday"`), &lt); err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if err := json.Unmarshal([]byte(`[2024]`), &lt); err == nil {
		t.Fatal("expected error for short array")
	}
}

func TestOrderResponseKeepsUnknownStatus(t *testing.T) {
	var resp orderResponse
	if err := json.Unmarshal([]byte(`{"id":1,"status":"ON_HOLD","totalAmount":10}`), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	order := resp.toModel()
	if order.Status != "ON_HOLD" || order.Status.IsValid() {
		t.Fatalf("expected unknown status to pass through, got %q", order.Status)
	}
	if order.PaymentMethod != "COD" {
		t.Fatalf("expected COD default, got %q", order.PaymentMethod)
	}
}
