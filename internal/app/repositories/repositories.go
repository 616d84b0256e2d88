package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/mert/schoolhub/internal/db"
)

// rowQuerier is the subset of pgx satisfied by both the pool and a
// transaction, so an insert helper can run inside either.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances. The repositories are
// the only path to the store: every query on a tenant-owned table binds
// the caller's tenant id, and a row belonging to another tenant is
// indistinguishable from a missing one.
type Repositories struct {
	TenantRepository       *TenantRepository
	UserRepository         *UserRepository
	RegistrationRepository *RegistrationRepository
	GradeRepository        *GradeRepository
	TeacherRepository      *TeacherRepository
	CourseRepository       *CourseRepository
	StudentRepository      *StudentRepository
	EnrollmentRepository   *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	pool := database.Pool
	return &Repositories{
		TenantRepository:       NewTenantRepository(pool),
		UserRepository:         NewUserRepository(pool),
		RegistrationRepository: NewRegistrationRepository(database),
		GradeRepository:        NewGradeRepository(pool),
		TeacherRepository:      NewTeacherRepository(pool),
		CourseRepository:       NewCourseRepository(pool),
		StudentRepository:      NewStudentRepository(pool),
		EnrollmentRepository:   NewEnrollmentRepository(pool),
	}
}
