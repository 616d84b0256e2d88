package dto

// CreateCourseRequest carries the input for creating a course
type CreateCourseRequest struct {
	Name      string `json:"name" example:"Algebra I"`
	TeacherID int64  `json:"teacherId" example:"3"`
	GradeID   int64  `json:"gradeId" example:"5"`
}

// UpdateCourseRequest carries the input for updating a course
type UpdateCourseRequest struct {
	Name      string `json:"name" example:"Algebra II"`
	TeacherID int64  `json:"teacherId" example:"3"`
	GradeID   int64  `json:"gradeId" example:"5"`
}
