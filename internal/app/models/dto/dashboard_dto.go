package dto

import "github.com/mert/schoolhub/internal/app/models"

// DashboardStats holds the per-tenant entity counts
type DashboardStats struct {
	StudentsCount    int64 `json:"studentsCount" example:"3"`
	CoursesCount     int64 `json:"coursesCount" example:"2"`
	EnrollmentsCount int64 `json:"enrollmentsCount" example:"4"`
}

// DashboardResponse is the dashboard payload: counts plus the most
// recently created enrollments with student and course attached,
// newest first.
type DashboardResponse struct {
	Stats             DashboardStats       `json:"stats"`
	RecentEnrollments []*models.Enrollment `json:"recentEnrollments"`
}
