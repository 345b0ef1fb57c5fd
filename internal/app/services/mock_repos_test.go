package services

import (
	"context"
	"sort"
	"time"

	"github.com/yigit/academics/internal/app/models"
	"github.com/yigit/academics/internal/app/repositories"
)

// ── In-memory store shared by the fake repositories ──
// It enforces the same unique, restrict and cascade rules as the schema.

type memStore struct {
	students    map[int64]*models.Student
	teachers    map[int64]*models.Teacher
	subjects    map[int64]*models.Subject
	enrollments map[int64]*models.Enrollment
	nextID      map[string]int64
	clock       time.Time
}

func newMemStore() *memStore {
	return &memStore{
		students:    make(map[int64]*models.Student),
		teachers:    make(map[int64]*models.Teacher),
		subjects:    make(map[int64]*models.Subject),
		enrollments: make(map[int64]*models.Enrollment),
		nextID:      make(map[string]int64),
		clock:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) id(table string) int64 {
	m.nextID[table]++
	return m.nextID[table]
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memStore) enrollmentCount(match func(*models.Enrollment) bool) int64 {
	var n int64
	for _, e := range m.enrollments {
		if match(e) {
			n++
		}
	}
	return n
}

func (m *memStore) cascadeEnrollments(match func(*models.Enrollment) bool) {
	for id, e := range m.enrollments {
		if match(e) {
			delete(m.enrollments, id)
		}
	}
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	store *memStore
	// createErr and deleteErr simulate store-level failures
	createErr error
	deleteErr error
}

func (m *mockStudentRepo) Create(_ context.Context, student *models.Student) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, s := range m.store.students {
		if s.Email == student.Email {
			return repositories.ErrStudentEmailExists
		}
	}
	student.ID = m.store.id("students")
	student.CreatedAt = m.store.tick()
	student.UpdatedAt = student.CreatedAt
	copied := *student
	m.store.students[student.ID] = &copied
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := m.store.students[id]
	if !ok {
		return nil, repositories.ErrStudentNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *mockStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	result := []*models.Student{}
	for _, s := range m.store.students {
		copied := *s
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Surname != result[j].Surname {
			return result[i].Surname < result[j].Surname
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (m *mockStudentRepo) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, s := range m.store.students {
		if s.Email == email && s.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *models.Student) (bool, error) {
	current, ok := m.store.students[student.ID]
	if !ok || current.SameContent(student) {
		return false, nil
	}
	for _, s := range m.store.students {
		if s.ID != student.ID && s.Email == student.Email {
			return false, repositories.ErrStudentEmailExists
		}
	}
	student.UpdatedAt = m.store.tick()
	copied := *student
	m.store.students[student.ID] = &copied
	return true, nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.store.students[id]; !ok {
		return repositories.ErrStudentNotFound
	}
	delete(m.store.students, id)
	m.store.cascadeEnrollments(func(e *models.Enrollment) bool { return e.StudentID == id })
	return nil
}

func (m *mockStudentRepo) GetEnrolledSubjects(_ context.Context, studentID int64) ([]*models.SubjectSummary, error) {
	result := []*models.SubjectSummary{}
	for _, e := range m.store.enrollments {
		if e.StudentID != studentID {
			continue
		}
		s := m.store.subjects[e.SubjectID]
		result = append(result, &models.SubjectSummary{ID: s.ID, Name: s.Name, Description: s.Description})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock TeacherRepository ──

type mockTeacherRepo struct {
	store     *memStore
	deleteErr error
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *models.Teacher) error {
	teacher.ID = m.store.id("teachers")
	teacher.CreatedAt = m.store.tick()
	teacher.UpdatedAt = teacher.CreatedAt
	copied := *teacher
	m.store.teachers[teacher.ID] = &copied
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id int64) (*models.Teacher, error) {
	t, ok := m.store.teachers[id]
	if !ok {
		return nil, repositories.ErrTeacherNotFound
	}
	copied := *t
	return &copied, nil
}

func (m *mockTeacherRepo) GetAll(_ context.Context) ([]*models.Teacher, error) {
	result := []*models.Teacher{}
	for _, t := range m.store.teachers {
		copied := *t
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Surname != result[j].Surname {
			return result[i].Surname < result[j].Surname
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (m *mockTeacherRepo) Update(_ context.Context, teacher *models.Teacher) (bool, error) {
	current, ok := m.store.teachers[teacher.ID]
	if !ok || current.SameContent(teacher) {
		return false, nil
	}
	teacher.UpdatedAt = m.store.tick()
	copied := *teacher
	m.store.teachers[teacher.ID] = &copied
	return true, nil
}

func (m *mockTeacherRepo) Delete(_ context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.store.teachers[id]; !ok {
		return repositories.ErrTeacherNotFound
	}
	for _, s := range m.store.subjects {
		if s.TeacherID != nil && *s.TeacherID == id {
			return repositories.ErrTeacherHasSubjects
		}
	}
	delete(m.store.teachers, id)
	return nil
}

func (m *mockTeacherRepo) GetTaughtSubjects(_ context.Context, teacherID int64) ([]*models.SubjectSummary, error) {
	result := []*models.SubjectSummary{}
	for _, s := range m.store.subjects {
		if s.TeacherID != nil && *s.TeacherID == teacherID {
			result = append(result, &models.SubjectSummary{ID: s.ID, Name: s.Name, Description: s.Description})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock SubjectRepository ──

type mockSubjectRepo struct {
	store *memStore
	// existsByTeacherOverride hides assignments from the proactive check
	existsByTeacherOverride *bool
	createErr               error
}

func (m *mockSubjectRepo) withTeacher(s *models.Subject) *models.Subject {
	copied := *s
	copied.AssignedTeacher = nil
	if s.TeacherID != nil {
		if t, ok := m.store.teachers[*s.TeacherID]; ok {
			copied.AssignedTeacher = t.Summary()
		}
	}
	return &copied
}

func (m *mockSubjectRepo) checkWrite(subject *models.Subject) error {
	for _, s := range m.store.subjects {
		if s.ID != subject.ID && s.Name == subject.Name {
			return repositories.ErrSubjectNameExists
		}
	}
	if subject.TeacherID != nil {
		if _, ok := m.store.teachers[*subject.TeacherID]; !ok {
			return repositories.ErrSubjectTeacherNotFound
		}
	}
	return nil
}

func (m *mockSubjectRepo) Create(_ context.Context, subject *models.Subject) error {
	if m.createErr != nil {
		return m.createErr
	}
	if err := m.checkWrite(subject); err != nil {
		return err
	}
	subject.ID = m.store.id("subjects")
	subject.CreatedAt = m.store.tick()
	subject.UpdatedAt = subject.CreatedAt
	copied := *subject
	copied.AssignedTeacher = nil
	m.store.subjects[subject.ID] = &copied
	return nil
}

func (m *mockSubjectRepo) GetByID(_ context.Context, id int64) (*models.Subject, error) {
	s, ok := m.store.subjects[id]
	if !ok {
		return nil, repositories.ErrSubjectNotFound
	}
	return m.withTeacher(s), nil
}

func (m *mockSubjectRepo) GetAll(_ context.Context) ([]*models.Subject, error) {
	result := []*models.Subject{}
	for _, s := range m.store.subjects {
		result = append(result, m.withTeacher(s))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockSubjectRepo) NameExists(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, s := range m.store.subjects {
		if s.Name == name && s.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSubjectRepo) ExistsByTeacher(_ context.Context, teacherID int64) (bool, error) {
	if m.existsByTeacherOverride != nil {
		return *m.existsByTeacherOverride, nil
	}
	for _, s := range m.store.subjects {
		if s.TeacherID != nil && *s.TeacherID == teacherID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSubjectRepo) Update(_ context.Context, subject *models.Subject) (bool, error) {
	current, ok := m.store.subjects[subject.ID]
	if !ok || current.SameContent(subject) {
		return false, nil
	}
	if err := m.checkWrite(subject); err != nil {
		return false, err
	}
	subject.UpdatedAt = m.store.tick()
	copied := *subject
	copied.AssignedTeacher = nil
	m.store.subjects[subject.ID] = &copied
	return true, nil
}

func (m *mockSubjectRepo) AssignTeacher(_ context.Context, subjectID, teacherID int64) error {
	s, ok := m.store.subjects[subjectID]
	if !ok {
		return repositories.ErrSubjectNotFound
	}
	if _, ok := m.store.teachers[teacherID]; !ok {
		return repositories.ErrSubjectTeacherNotFound
	}
	id := teacherID
	s.TeacherID = &id
	s.UpdatedAt = m.store.tick()
	return nil
}

func (m *mockSubjectRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.store.subjects[id]; !ok {
		return repositories.ErrSubjectNotFound
	}
	delete(m.store.subjects, id)
	m.store.cascadeEnrollments(func(e *models.Enrollment) bool { return e.SubjectID == id })
	return nil
}

func (m *mockSubjectRepo) GetEnrolledStudents(_ context.Context, subjectID int64) ([]*models.StudentSummary, error) {
	result := []*models.StudentSummary{}
	for _, e := range m.store.enrollments {
		if e.SubjectID != subjectID {
			continue
		}
		s := m.store.students[e.StudentID]
		result = append(result, &models.StudentSummary{ID: s.ID, Name: s.Name, Surname: s.Surname, Email: s.Email})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Surname != result[j].Surname {
			return result[i].Surname < result[j].Surname
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct {
	store *memStore
	// hidePairOnce makes the next pair lookup miss, simulating a concurrent enroll
	hidePairOnce bool
}

func (m *mockEnrollmentRepo) Create(_ context.Context, enrollment *models.Enrollment) error {
	if _, ok := m.store.students[enrollment.StudentID]; !ok {
		return repositories.ErrEnrollmentStudentNotFound
	}
	if _, ok := m.store.subjects[enrollment.SubjectID]; !ok {
		return repositories.ErrEnrollmentSubjectNotFound
	}
	for _, e := range m.store.enrollments {
		if e.StudentID == enrollment.StudentID && e.SubjectID == enrollment.SubjectID {
			return repositories.ErrEnrollmentExists
		}
	}
	enrollment.ID = m.store.id("enrollments")
	enrollment.CreatedAt = m.store.tick()
	enrollment.UpdatedAt = enrollment.CreatedAt
	copied := *enrollment
	m.store.enrollments[enrollment.ID] = &copied
	return nil
}

func (m *mockEnrollmentRepo) GetByStudentAndSubject(_ context.Context, studentID, subjectID int64) (*models.Enrollment, error) {
	if m.hidePairOnce {
		m.hidePairOnce = false
		return nil, repositories.ErrEnrollmentNotFound
	}
	for _, e := range m.store.enrollments {
		if e.StudentID == studentID && e.SubjectID == subjectID {
			copied := *e
			return &copied, nil
		}
	}
	return nil, repositories.ErrEnrollmentNotFound
}

func (m *mockEnrollmentRepo) CountByStudent(_ context.Context, studentID int64) (int64, error) {
	return m.store.enrollmentCount(func(e *models.Enrollment) bool { return e.StudentID == studentID }), nil
}

func (m *mockEnrollmentRepo) CountBySubject(_ context.Context, subjectID int64) (int64, error) {
	return m.store.enrollmentCount(func(e *models.Enrollment) bool { return e.SubjectID == subjectID }), nil
}

// ── Test fixture ──

type fixture struct {
	store       *memStore
	studentRepo *mockStudentRepo
	teacherRepo *mockTeacherRepo
	subjectRepo *mockSubjectRepo
	enrollRepo  *mockEnrollmentRepo

	students    StudentService
	teachers    TeacherService
	subjects    SubjectService
	enrollments EnrollmentService
}

func newFixture() *fixture {
	store := newMemStore()
	f := &fixture{
		store:       store,
		studentRepo: &mockStudentRepo{store: store},
		teacherRepo: &mockTeacherRepo{store: store},
		subjectRepo: &mockSubjectRepo{store: store},
		enrollRepo:  &mockEnrollmentRepo{store: store},
	}
	f.students = NewStudentService(f.studentRepo, f.enrollRepo)
	f.teachers = NewTeacherService(f.teacherRepo, f.subjectRepo)
	f.subjects = NewSubjectService(f.subjectRepo, f.teacherRepo, f.enrollRepo)
	f.enrollments = NewEnrollmentService(f.enrollRepo, f.studentRepo, f.subjectRepo)
	return f
}
