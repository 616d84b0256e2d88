package models

import "time"

// Teacher represents a teaching staff member of a tenant
type Teacher struct {
	ID             int64     `json:"id" db:"id" example:"3"`
	TenantID       int64     `json:"tenantId" db:"tenant_id" example:"1"`
	Name           string    `json:"name" db:"name" example:"John Doe"`
	Specialization string    `json:"specialization" db:"specialization" example:"Mathematics"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
