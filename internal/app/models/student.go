package models

import "time"

// Gender enumerates the accepted student gender values
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid reports whether g is one of the accepted gender values
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Student defines the student model based on the 'students' table.
// StudentCode is unique across all tenants, not just within one.
type Student struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	TenantID    int64     `json:"tenantId" db:"tenant_id" example:"1"`
	StudentCode string    `json:"studentCode" db:"student_code" example:"S001"`
	Name        string    `json:"name" db:"name" example:"Ana Smith"`
	GradeID     int64     `json:"gradeId" db:"grade_id" example:"5"`
	BirthDate   time.Time `json:"birthDate" db:"birth_date"`
	Gender      Gender    `json:"gender" db:"gender" example:"female"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Grade *Grade `json:"grade,omitempty"`
}
