package models

import "time"

// Tenant represents a school organization that owns all of its data
type Tenant struct {
	ID         int64     `json:"id" db:"id" example:"1"`
	SchoolName string    `json:"schoolName" db:"school_name" example:"Riverside High"`
	Address    string    `json:"address" db:"address" example:"12 Main St"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
