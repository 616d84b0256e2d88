package services

import (
	"context"

	"github.com/mert/schoolhub/internal/app/models"
)

// Store interfaces consumed by the services. The pgx repositories are the
// production implementations; tests substitute in-memory fakes. Every
// method that touches a tenant-owned table takes the caller's tenant id
// explicitly, never reading it from ambient state.

// GradeStore is the tenant-scoped access surface for grades
type GradeStore interface {
	Create(ctx context.Context, grade *models.Grade) error
	GetByID(ctx context.Context, tenantID, id int64) (*models.Grade, error)
	List(ctx context.Context, tenantID int64) ([]*models.Grade, error)
	Update(ctx context.Context, grade *models.Grade) error
	Delete(ctx context.Context, tenantID, id int64) error
}

// TeacherStore is the tenant-scoped access surface for teachers
type TeacherStore interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, tenantID, id int64) (*models.Teacher, error)
	List(ctx context.Context, tenantID int64) ([]*models.Teacher, error)
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, tenantID, id int64) error
}

// CourseStore is the tenant-scoped access surface for courses
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, tenantID, id int64) (*models.Course, error)
	List(ctx context.Context, tenantID int64) ([]*models.Course, error)
	CountByTenant(ctx context.Context, tenantID int64) (int64, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, tenantID, id int64) error
}

// StudentStore is the tenant-scoped access surface for students
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, tenantID, id int64) (*models.Student, error)
	List(ctx context.Context, tenantID int64) ([]*models.Student, error)
	CodeExists(ctx context.Context, code string, excludeID int64) (bool, error)
	CountByTenant(ctx context.Context, tenantID int64) (int64, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, tenantID, id int64) error
}

// EnrollmentStore is the tenant-scoped access surface for enrollments
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, tenantID, id int64) (*models.Enrollment, error)
	List(ctx context.Context, tenantID int64) ([]*models.Enrollment, error)
	ListRecent(ctx context.Context, tenantID int64, limit int) ([]*models.Enrollment, error)
	CountByTenant(ctx context.Context, tenantID int64) (int64, error)
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, tenantID, id int64) error
}

// RegistrationStore creates a tenant together with its first user in a
// single atomic step; a failed user insert leaves no tenant row behind.
type RegistrationStore interface {
	CreateTenantWithUser(ctx context.Context, tenant *models.Tenant, user *models.User) error
}

// UserStore is the read surface for user accounts; writes go through
// RegistrationStore so the tenant and its first user commit together.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
