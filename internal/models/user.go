package models

// User roles known to the platform.
const (
	RoleClient      = "CLIENT"
	RoleCommercant  = "COMMERCANT"
	RoleFournisseur = "FOURNISSEUR"
	RoleLivreur     = "LIVREUR"
	RoleAdmin       = "ADMIN"
	RoleManager     = "MANAGER"
)

// AuthRequest is the login payload.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordRequest confirms a password reset with the emailed OTP.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
	OTP         string `json:"otp"`
	Email       string `json:"email"`
}

// ProfileRequest is the registration payload. Exactly one of the role info
// blocks is expected, matching the chosen role.
type ProfileRequest struct {
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Password     string        `json:"password"`
	Role         string        `json:"role"`
	MerchantInfo *MerchantInfo `json:"merchantInfo,omitempty"`
	SupplierInfo *SupplierInfo `json:"supplierInfo,omitempty"`
	DeliveryInfo *DeliveryInfo `json:"deliveryInfo,omitempty"`
	ClientInfo   *ClientInfo   `json:"clientInfo,omitempty"`
}

// ProfileResponse is the authenticated user profile returned by the API and
// persisted in the session store.
type ProfileResponse struct {
	UserID            string   `json:"userId"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	IsAccountVerified bool     `json:"isAccountVerified"`
	IsApproved        bool     `json:"isApproved"`
	Roles             []string `json:"roles"`
	PhoneNumber       *string  `json:"phoneNumber,omitempty"`
	EnterpriseName    *string  `json:"enterpriseName,omitempty"`
	Town              *string  `json:"town,omitempty"`
	Address           *string  `json:"address,omitempty"`
}

// HasRole reports whether the profile carries the given role.
func (p *ProfileResponse) HasRole(role string) bool {
	if p == nil {
		return false
	}
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// MerchantInfo describes a merchant's shop during registration.
type MerchantInfo struct {
	ShopName    string   `json:"shopName"`
	Town        string   `json:"town"`
	Address     string   `json:"address"`
	PhoneNumber string   `json:"phoneNumber"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// SupplierInfo describes a supplier's shop during registration.
type SupplierInfo struct {
	ShopName    string   `json:"shopName"`
	Town        string   `json:"town"`
	Address     string   `json:"address"`
	PhoneNumber string   `json:"phoneNumber"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// DeliveryInfo describes a delivery agent during registration.
type DeliveryInfo struct {
	Town        string   `json:"town"`
	Address     string   `json:"address"`
	PhoneNumber string   `json:"phoneNumber"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// ClientInfo describes a client during registration.
type ClientInfo struct {
	Town        string   `json:"town"`
	Address     string   `json:"address"`
	PhoneNumber string   `json:"phoneNumber"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}
