package models

import "time"

// Grade represents a grade level (class year) within a tenant
type Grade struct {
	ID        int64     `json:"id" db:"id" example:"5"`
	TenantID  int64     `json:"tenantId" db:"tenant_id" example:"1"`
	Name      string    `json:"name" db:"name" example:"Grade 5"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
