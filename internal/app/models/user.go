package models

import "time"

// User defines an account that can sign in on behalf of a tenant.
// The tenant ID carried by the user's session scopes every operation.
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	TenantID     int64     `json:"tenantId" db:"tenant_id" example:"1"`
	Email        string    `json:"email" db:"email" example:"admin@school.edu"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"fullName" db:"full_name" example:"Jane Admin"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Tenant *Tenant `json:"tenant,omitempty"`
}
