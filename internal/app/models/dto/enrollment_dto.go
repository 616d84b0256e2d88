package dto

// CreateEnrollmentRequest carries the input for enrolling a student in a
// course. Both ids must belong to the caller's tenant.
type CreateEnrollmentRequest struct {
	StudentID      int64  `json:"studentId" example:"1"`
	CourseID       int64  `json:"courseId" example:"7"`
	EnrollmentDate string `json:"enrollmentDate" example:"2026-01-15"`
}

// UpdateEnrollmentRequest carries the input for updating an enrollment
type UpdateEnrollmentRequest struct {
	StudentID      int64  `json:"studentId" example:"1"`
	CourseID       int64  `json:"courseId" example:"7"`
	EnrollmentDate string `json:"enrollmentDate" example:"2026-01-15"`
}
