package services

import (
	"context"
	"sort"
	"time"

	"github.com/mert/schoolhub/internal/app/models"
	"github.com/mert/schoolhub/internal/pkg/apperrors"
)

// In-memory store fakes. They mirror the repository contract: a row
// owned by another tenant is reported exactly like a missing one.

type fakeGradeStore struct {
	nextID    int64
	rows      map[int64]*models.Grade
	deleteErr error
}

func newFakeGradeStore() *fakeGradeStore {
	return &fakeGradeStore{rows: make(map[int64]*models.Grade)}
}

func (f *fakeGradeStore) add(g *models.Grade) *models.Grade {
	if g.ID == 0 {
		f.nextID++
		g.ID = f.nextID
	} else if g.ID > f.nextID {
		f.nextID = g.ID
	}
	c := *g
	f.rows[g.ID] = &c
	return g
}

func (f *fakeGradeStore) Create(_ context.Context, g *models.Grade) error {
	g.CreatedAt = time.Now()
	g.UpdatedAt = g.CreatedAt
	f.add(g)
	return nil
}

func (f *fakeGradeStore) GetByID(_ context.Context, tenantID, id int64) (*models.Grade, error) {
	g, ok := f.rows[id]
	if !ok || g.TenantID != tenantID {
		return nil, apperrors.ErrResourceNotFound
	}
	c := *g
	return &c, nil
}

func (f *fakeGradeStore) List(_ context.Context, tenantID int64) ([]*models.Grade, error) {
	var out []*models.Grade
	for _, g := range f.rows {
		if g.TenantID == tenantID {
			c := *g
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeGradeStore) Update(_ context.Context, g *models.Grade) error {
	cur, ok := f.rows[g.ID]
	if !ok || cur.TenantID != g.TenantID {
		return apperrors.ErrResourceNotFound
	}
	c := *g
	c.UpdatedAt = time.Now()
	f.rows[g.ID] = &c
	return nil
}

func (f *fakeGradeStore) Delete(_ context.Context, tenantID, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	g, ok := f.rows[id]
	if !ok || g.TenantID != tenantID {
		return apperrors.ErrResourceNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeTeacherStore struct {
	nextID    int64
	rows      map[int64]*models.Teacher
	deleteErr error
}

func newFakeTeacherStore() *fakeTeacherStore {
	return &fakeTeacherStore{rows: make(map[int64]*models.Teacher)}
}

func (f *fakeTeacherStore) add(t *models.Teacher) *models.Teacher {
	if t.ID == 0 {
		f.nextID++
		t.ID = f.nextID
	} else if t.ID > f.nextID {
		f.nextID = t.ID
	}
	c := *t
	f.rows[t.ID] = &c
	return t
}

func (f *fakeTeacherStore) Create(_ context.Context, t *models.Teacher) error {
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	f.add(t)
	return nil
}

func (f *fakeTeacherStore) GetByID(_ context.Context, tenantID, id int64) (*models.Teacher, error) {
	t, ok := f.rows[id]
	if !ok || t.TenantID != tenantID {
		return nil, apperrors.ErrResourceNotFound
	}
	c := *t
	return &c, nil
}

func (f *fakeTeacherStore) List(_ context.Context, tenantID int64) ([]*models.Teacher, error) {
	var out []*models.Teacher
	for _, t := range f.rows {
		if t.TenantID == tenantID {
			c := *t
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTeacherStore) Update(_ context.Context, t *models.Teacher) error {
	cur, ok := f.rows[t.ID]
	if !ok || cur.TenantID != t.TenantID {
		return apperrors.ErrResourceNotFound
	}
	c := *t
	c.UpdatedAt = time.Now()
	f.rows[t.ID] = &c
	return nil
}

func (f *fakeTeacherStore) Delete(_ context.Context, tenantID, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	t, ok := f.rows[id]
	if !ok || t.TenantID != tenantID {
		return apperrors.ErrResourceNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeCourseStore struct {
	nextID    int64
	rows      map[int64]*models.Course
	createErr error
	updateErr error
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{rows: make(map[int64]*models.Course)}
}

func (f *fakeCourseStore) add(c *models.Course) *models.Course {
	if c.ID == 0 {
		f.nextID++
		c.ID = f.nextID
	} else if c.ID > f.nextID {
		f.nextID = c.ID
	}
	cp := *c
	f.rows[c.ID] = &cp
	return c
}

func (f *fakeCourseStore) Create(_ context.Context, c *models.Course) error {
	if f.createErr != nil {
		return f.createErr
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	f.add(c)
	return nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, tenantID, id int64) (*models.Course, error) {
	c, ok := f.rows[id]
	if !ok || c.TenantID != tenantID {
		return nil, apperrors.ErrResourceNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCourseStore) List(_ context.Context, tenantID int64) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range f.rows {
		if c.TenantID == tenantID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCourseStore) CountByTenant(_ context.Context, tenantID int64) (int64, error) {
	var n int64
	for _, c := range f.rows {
		if c.TenantID == tenantID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCourseStore) Update(_ context.Context, c *models.Course) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cur, ok := f.rows[c.ID]
	if !ok || cur.TenantID != c.TenantID {
		return apperrors.ErrResourceNotFound
	}
	cp := *c
	cp.UpdatedAt = time.Now()
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCourseStore) Delete(_ context.Context, tenantID, id int64) error {
	c, ok := f.rows[id]
	if !ok || c.TenantID != tenantID {
		return apperrors.ErrResourceNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeStudentStore struct {
	nextID    int64
	rows      map[int64]*models.Student
	createErr error
	updateErr error
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{rows: make(map[int64]*models.Student)}
}

func (f *fakeStudentStore) add(s *models.Student) *models.Student {
	if s.ID == 0 {
		f.nextID++
		s.ID = f.nextID
	} else if s.ID > f.nextID {
		f.nextID = s.ID
	}
	c := *s
	f.rows[s.ID] = &c
	return s
}

func (f *fakeStudentStore) Create(_ context.Context, s *models.Student) error {
	if f.createErr != nil {
		return f.createErr
	}
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	f.add(s)
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, tenantID, id int64) (*models.Student, error) {
	s, ok := f.rows[id]
	if !ok || s.TenantID != tenantID {
		return nil, apperrors.ErrResourceNotFound
	}
	c := *s
	return &c, nil
}

func (f *fakeStudentStore) List(_ context.Context, tenantID int64) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.rows {
		if s.TenantID == tenantID {
			c := *s
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// CodeExists scans every tenant's rows; the student code is globally
// unique.
func (f *fakeStudentStore) CodeExists(_ context.Context, code string, excludeID int64) (bool, error) {
	for _, s := range f.rows {
		if s.StudentCode == code && s.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentStore) CountByTenant(_ context.Context, tenantID int64) (int64, error) {
	var n int64
	for _, s := range f.rows {
		if s.TenantID == tenantID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStudentStore) Update(_ context.Context, s *models.Student) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cur, ok := f.rows[s.ID]
	if !ok || cur.TenantID != s.TenantID {
		return apperrors.ErrResourceNotFound
	}
	c := *s
	c.UpdatedAt = time.Now()
	f.rows[s.ID] = &c
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, tenantID, id int64) error {
	s, ok := f.rows[id]
	if !ok || s.TenantID != tenantID {
		return apperrors.ErrResourceNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeEnrollmentStore struct {
	nextID    int64
	rows      map[int64]*models.Enrollment
	createErr error
}

func newFakeEnrollmentStore() *fakeEnrollmentStore {
	return &fakeEnrollmentStore{rows: make(map[int64]*models.Enrollment)}
}

func (f *fakeEnrollmentStore) add(e *models.Enrollment) *models.Enrollment {
	if e.ID == 0 {
		f.nextID++
		e.ID = f.nextID
	} else if e.ID > f.nextID {
		f.nextID = e.ID
	}
	c := *e
	f.rows[e.ID] = &c
	return e
}

func (f *fakeEnrollmentStore) Create(_ context.Context, e *models.Enrollment) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	f.add(e)
	return nil
}

func (f *fakeEnrollmentStore) GetByID(_ context.Context, tenantID, id int64) (*models.Enrollment, error) {
	e, ok := f.rows[id]
	if !ok || e.TenantID != tenantID {
		return nil, apperrors.ErrResourceNotFound
	}
	c := *e
	return &c, nil
}

func (f *fakeEnrollmentStore) list(tenantID int64) []*models.Enrollment {
	var out []*models.Enrollment
	for _, e := range f.rows {
		if e.TenantID == tenantID {
			c := *e
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (f *fakeEnrollmentStore) List(_ context.Context, tenantID int64) ([]*models.Enrollment, error) {
	return f.list(tenantID), nil
}

func (f *fakeEnrollmentStore) ListRecent(_ context.Context, tenantID int64, limit int) ([]*models.Enrollment, error) {
	out := f.list(tenantID)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeEnrollmentStore) CountByTenant(_ context.Context, tenantID int64) (int64, error) {
	var n int64
	for _, e := range f.rows {
		if e.TenantID == tenantID {
			n++
		}
	}
	return n, nil
}

func (f *fakeEnrollmentStore) Update(_ context.Context, e *models.Enrollment) error {
	cur, ok := f.rows[e.ID]
	if !ok || cur.TenantID != e.TenantID {
		return apperrors.ErrResourceNotFound
	}
	c := *e
	c.UpdatedAt = time.Now()
	f.rows[e.ID] = &c
	return nil
}

func (f *fakeEnrollmentStore) Delete(_ context.Context, tenantID, id int64) error {
	e, ok := f.rows[id]
	if !ok || e.TenantID != tenantID {
		return apperrors.ErrResourceNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeTenantStore struct {
	nextID int64
	rows   map[int64]*models.Tenant
}

func newFakeTenantStore() *fakeTenantStore {
	return &fakeTenantStore{rows: make(map[int64]*models.Tenant)}
}

func (f *fakeTenantStore) Create(_ context.Context, t *models.Tenant) error {
	f.nextID++
	t.ID = f.nextID
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	c := *t
	f.rows[t.ID] = &c
	return nil
}

func (f *fakeTenantStore) GetByID(_ context.Context, id int64) (*models.Tenant, error) {
	t, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	c := *t
	return &c, nil
}

type fakeUserStore struct {
	nextID    int64
	rows      map[int64]*models.User
	createErr error
}

// fakeRegistrationStore mirrors the transactional registration path: a
// failed user insert rolls the tenant row back.
type fakeRegistrationStore struct {
	tenants *fakeTenantStore
	users   *fakeUserStore
}

func (f *fakeRegistrationStore) CreateTenantWithUser(ctx context.Context, tenant *models.Tenant, user *models.User) error {
	if err := f.tenants.Create(ctx, tenant); err != nil {
		return err
	}
	user.TenantID = tenant.ID
	if err := f.users.Create(ctx, user); err != nil {
		delete(f.tenants.rows, tenant.ID)
		return err
	}
	return nil
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{rows: make(map[int64]*models.User)}
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	c := *u
	f.rows[u.ID] = &c
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.rows {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.rows {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}
