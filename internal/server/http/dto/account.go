package dto

// ProfileRequest updates the editable profile fields.
type ProfileRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	ImageURL string `json:"imageUrl"`
}

// ProfileResponse describes the account.
type ProfileResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Role     string `json:"role"`
}

// PasswordRequest changes the account password.
type PasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// AddressRequest creates or replaces an address.
type AddressRequest struct {
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	IsDefault   bool   `json:"isDefault"`
}

// AddressResponse is a saved delivery address.
type AddressResponse struct {
	ID          int64  `json:"id"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	State       string `json:"state,omitempty"`
	Pincode     string `json:"pincode"`
	IsDefault   bool   `json:"isDefault"`
}
