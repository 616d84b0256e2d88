package models

import "time"

// Enrollment links a student to a course within the same tenant
type Enrollment struct {
	ID             int64     `json:"id" db:"id" example:"4"`
	TenantID       int64     `json:"tenantId" db:"tenant_id" example:"1"`
	StudentID      int64     `json:"studentId" db:"student_id" example:"1"`
	CourseID       int64     `json:"courseId" db:"course_id" example:"7"`
	EnrollmentDate time.Time `json:"enrollmentDate" db:"enrollment_date"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}
