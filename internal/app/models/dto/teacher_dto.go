package dto

// CreateTeacherRequest carries the input for creating a teacher
type CreateTeacherRequest struct {
	Name           string `json:"name" example:"John Doe"`
	Specialization string `json:"specialization" example:"Mathematics"`
}

// UpdateTeacherRequest carries the input for updating a teacher
type UpdateTeacherRequest struct {
	Name           string `json:"name" example:"John Doe"`
	Specialization string `json:"specialization" example:"Physics"`
}
