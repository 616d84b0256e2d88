package dto

// CreateStudentRequest carries the input for creating a student.
// BirthDate is a calendar date in YYYY-MM-DD format.
// Any tenant id present in the payload is ignored; the tenant always
// comes from the authenticated session.
type CreateStudentRequest struct {
	StudentCode string `json:"studentCode" example:"S001"`
	Name        string `json:"name" example:"Ana Smith"`
	GradeID     int64  `json:"gradeId" example:"5"`
	BirthDate   string `json:"birthDate" example:"2010-01-01"`
	Gender      string `json:"gender" example:"female"`
}

// UpdateStudentRequest carries the input for updating a student
type UpdateStudentRequest struct {
	StudentCode string `json:"studentCode" example:"S001"`
	Name        string `json:"name" example:"Anna Smith"`
	GradeID     int64  `json:"gradeId" example:"5"`
	BirthDate   string `json:"birthDate" example:"2010-01-01"`
	Gender      string `json:"gender" example:"female"`
}
