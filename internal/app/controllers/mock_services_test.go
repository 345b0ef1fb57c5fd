package controllers

import (
	"context"
	"errors"

	"github.com/yigit/academics/internal/app/models"
	"github.com/yigit/academics/internal/app/models/dto"
)

var errNotMocked = errors.New("not mocked")

type mockStudentService struct {
	registerFn func(ctx context.Context, req *dto.StudentRequest) (*models.Student, error)
	listFn     func(ctx context.Context) ([]*models.Student, error)
	getFn      func(ctx context.Context, id int64) (*models.Student, error)
	updateFn   func(ctx context.Context, id int64, req *dto.StudentRequest) (*models.Student, bool, error)
	deleteFn   func(ctx context.Context, id int64) (*models.DeleteResult, error)
	subjectsFn func(ctx context.Context, id int64) ([]*models.SubjectSummary, error)
}

func (m *mockStudentService) Register(ctx context.Context, req *dto.StudentRequest) (*models.Student, error) {
	if m.registerFn == nil {
		return nil, errNotMocked
	}
	return m.registerFn(ctx, req)
}

func (m *mockStudentService) List(ctx context.Context) ([]*models.Student, error) {
	if m.listFn == nil {
		return nil, errNotMocked
	}
	return m.listFn(ctx)
}

func (m *mockStudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if m.getFn == nil {
		return nil, errNotMocked
	}
	return m.getFn(ctx, id)
}

func (m *mockStudentService) Update(ctx context.Context, id int64, req *dto.StudentRequest) (*models.Student, bool, error) {
	if m.updateFn == nil {
		return nil, false, errNotMocked
	}
	return m.updateFn(ctx, id, req)
}

func (m *mockStudentService) Delete(ctx context.Context, id int64) (*models.DeleteResult, error) {
	if m.deleteFn == nil {
		return nil, errNotMocked
	}
	return m.deleteFn(ctx, id)
}

func (m *mockStudentService) ListEnrolledSubjects(ctx context.Context, id int64) ([]*models.SubjectSummary, error) {
	if m.subjectsFn == nil {
		return nil, errNotMocked
	}
	return m.subjectsFn(ctx, id)
}

type mockTeacherService struct {
	registerFn func(ctx context.Context, req *dto.TeacherRequest) (*models.Teacher, error)
	getFn      func(ctx context.Context, id int64) (*models.Teacher, error)
	deleteFn   func(ctx context.Context, id int64) (*models.DeleteResult, error)
}

func (m *mockTeacherService) Register(ctx context.Context, req *dto.TeacherRequest) (*models.Teacher, error) {
	if m.registerFn == nil {
		return nil, errNotMocked
	}
	return m.registerFn(ctx, req)
}

func (m *mockTeacherService) List(ctx context.Context) ([]*models.Teacher, error) {
	return []*models.Teacher{}, nil
}

func (m *mockTeacherService) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if m.getFn == nil {
		return nil, errNotMocked
	}
	return m.getFn(ctx, id)
}

func (m *mockTeacherService) Update(ctx context.Context, id int64, req *dto.TeacherRequest) (*models.Teacher, bool, error) {
	return nil, false, errNotMocked
}

func (m *mockTeacherService) Delete(ctx context.Context, id int64) (*models.DeleteResult, error) {
	if m.deleteFn == nil {
		return nil, errNotMocked
	}
	return m.deleteFn(ctx, id)
}

func (m *mockTeacherService) ListTaughtSubjects(ctx context.Context, id int64) ([]*models.SubjectSummary, error) {
	return []*models.SubjectSummary{}, nil
}

type mockSubjectService struct {
	createFn  func(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, error)
	detailsFn func(ctx context.Context, id int64) (*models.SubjectDetails, error)
	updateFn  func(ctx context.Context, id int64, req *dto.UpdateSubjectRequest) (*models.Subject, bool, error)
	assignFn  func(ctx context.Context, id int64, req *dto.AssignTeacherRequest) (*models.Subject, error)
	deleteFn  func(ctx context.Context, id int64) (*models.DeleteResult, error)
}

func (m *mockSubjectService) Create(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, error) {
	if m.createFn == nil {
		return nil, errNotMocked
	}
	return m.createFn(ctx, req)
}

func (m *mockSubjectService) List(ctx context.Context) ([]*models.Subject, error) {
	return []*models.Subject{}, nil
}

func (m *mockSubjectService) GetDetails(ctx context.Context, id int64) (*models.SubjectDetails, error) {
	if m.detailsFn == nil {
		return nil, errNotMocked
	}
	return m.detailsFn(ctx, id)
}

func (m *mockSubjectService) Update(ctx context.Context, id int64, req *dto.UpdateSubjectRequest) (*models.Subject, bool, error) {
	if m.updateFn == nil {
		return nil, false, errNotMocked
	}
	return m.updateFn(ctx, id, req)
}

func (m *mockSubjectService) AssignTeacher(ctx context.Context, id int64, req *dto.AssignTeacherRequest) (*models.Subject, error) {
	if m.assignFn == nil {
		return nil, errNotMocked
	}
	return m.assignFn(ctx, id, req)
}

func (m *mockSubjectService) Delete(ctx context.Context, id int64) (*models.DeleteResult, error) {
	if m.deleteFn == nil {
		return nil, errNotMocked
	}
	return m.deleteFn(ctx, id)
}

type mockEnrollmentService struct {
	enrollFn func(ctx context.Context, req *dto.EnrollmentRequest) (*models.EnrollmentReceipt, error)
}

func (m *mockEnrollmentService) Enroll(ctx context.Context, req *dto.EnrollmentRequest) (*models.EnrollmentReceipt, error) {
	if m.enrollFn == nil {
		return nil, errNotMocked
	}
	return m.enrollFn(ctx, req)
}

type mockPinger struct {
	err error
}

func (m mockPinger) Ping(ctx context.Context) error {
	return m.err
}
