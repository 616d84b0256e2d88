package models

import "time"

// Course represents a course taught by a teacher to a grade level.
// TeacherID and GradeID must reference rows owned by the same tenant.
type Course struct {
	ID        int64     `json:"id" db:"id" example:"7"`
	TenantID  int64     `json:"tenantId" db:"tenant_id" example:"1"`
	Name      string    `json:"name" db:"name" example:"Algebra I"`
	TeacherID int64     `json:"teacherId" db:"teacher_id" example:"3"`
	GradeID   int64     `json:"gradeId" db:"grade_id" example:"5"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Teacher *Teacher `json:"teacher,omitempty"`
	Grade   *Grade   `json:"grade,omitempty"`
}
