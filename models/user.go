package models

import "time"

type UserRole string
type UserStatus string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"

	UserStatusActive      UserStatus = "Active"
	UserStatusDeactivated UserStatus = "Deactivated"
)

type User struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string     `gorm:"not null" json:"name"`
	Email         string     `gorm:"unique;not null" json:"email"`
	Password      string     `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Role          UserRole   `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	DisplayName   string     `json:"display_name"`
	ProfilePhoto  string     `json:"profile_photo"`
	DOB           string     `json:"dob"`
	Gender        string     `json:"gender"`
	Phone         string     `json:"phone"`
	EmailVerified bool       `json:"email_verified"`
	PhoneVerified bool       `json:"phone_verified"`
	WalletBalance float64    `gorm:"default:0" json:"wallet_balance"`
	LoyaltyPoints int        `gorm:"default:0" json:"loyalty_points"`
	Status        UserStatus `gorm:"type:VARCHAR(20);default:'Active'" json:"status"`
	Addresses     []Address  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Address belongs to one user; at most one row per user carries IsDefault.
type Address struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	FullAddress    string    `gorm:"not null" json:"full_address"`
	CityRegionZone string    `json:"city_region_zone"`
	PostalCode     string    `json:"postal_code"`
	Country        string    `json:"country"`
	GPSLocation    string    `json:"gps_location"`
	IsDefault      bool      `gorm:"default:false" json:"is_default"`
	CreatedAt      time.Time `json:"created_at"`
}
