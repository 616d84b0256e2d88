package services

import (
	"context"
	"fmt"

	"github.com/mert/schoolhub/internal/app/models/dto"
)

// recentEnrollmentLimit caps the dashboard's recent enrollment feed
const recentEnrollmentLimit = 5

// DashboardService aggregates per-tenant counts and recent activity
type DashboardService struct {
	studentStore    StudentStore
	courseStore     CourseStore
	enrollmentStore EnrollmentStore
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(studentStore StudentStore, courseStore CourseStore, enrollmentStore EnrollmentStore) *DashboardService {
	return &DashboardService{
		studentStore:    studentStore,
		courseStore:     courseStore,
		enrollmentStore: enrollmentStore,
	}
}

// GetDashboard returns the tenant's entity counts and its most recently
// created enrollments, newest first, with student and course attached
func (s *DashboardService) GetDashboard(ctx context.Context, tenantID int64) (*dto.DashboardResponse, error) {
	studentsCount, err := s.studentStore.CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	coursesCount, err := s.courseStore.CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error counting courses: %w", err)
	}

	enrollmentsCount, err := s.enrollmentStore.CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("error counting enrollments: %w", err)
	}

	recent, err := s.enrollmentStore.ListRecent(ctx, tenantID, recentEnrollmentLimit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recent enrollments: %w", err)
	}

	return &dto.DashboardResponse{
		Stats: dto.DashboardStats{
			StudentsCount:    studentsCount,
			CoursesCount:     coursesCount,
			EnrollmentsCount: enrollmentsCount,
		},
		RecentEnrollments: recent,
	}, nil
}
