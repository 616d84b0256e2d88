package dto

// CreateGradeRequest carries the input for creating a grade level
type CreateGradeRequest struct {
	Name string `json:"name" example:"Grade 5"`
}

// UpdateGradeRequest carries the input for updating a grade level
type UpdateGradeRequest struct {
	Name string `json:"name" example:"Grade 6"`
}
