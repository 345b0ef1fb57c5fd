package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/academics/internal/app/models"
	"github.com/yigit/academics/internal/app/models/dto"
	"github.com/yigit/academics/internal/app/repositories"
	"github.com/yigit/academics/internal/pkg/apperrors"
	"github.com/yigit/academics/internal/pkg/logger"
	"github.com/yigit/academics/internal/pkg/validation"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	Register(ctx context.Context, req *dto.StudentRequest) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	// Update returns the stored student and whether anything changed.
	Update(ctx context.Context, id int64, req *dto.StudentRequest) (*models.Student, bool, error)
	Delete(ctx context.Context, id int64) (*models.DeleteResult, error)
	ListEnrolledSubjects(ctx context.Context, id int64) ([]*models.SubjectSummary, error)
}

type studentServiceImpl struct {
	studentRepo    StudentRepository
	enrollmentRepo EnrollmentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentRepository, enrollmentRepo EnrollmentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// Register creates a student after checking the email is free
func (s *studentServiceImpl) Register(ctx context.Context, req *dto.StudentRequest) (*models.Student, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	exists, err := s.studentRepo.EmailExists(ctx, req.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking student email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	student := &models.Student{
		Name:    req.Name,
		Surname: req.Surname,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrStudentEmailExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return student, nil
}

// List returns all students ordered by surname, then name
func (s *studentServiceImpl) List(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetByID retrieves a student by ID
func (s *studentServiceImpl) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// Update replaces the editable fields of a student
func (s *studentServiceImpl) Update(ctx context.Context, id int64, req *dto.StudentRequest) (*models.Student, bool, error) {
	if err := validation.Validate(req); err != nil {
		return nil, false, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if req.Email != existing.Email {
		taken, err := s.studentRepo.EmailExists(ctx, req.Email, id)
		if err != nil {
			return nil, false, fmt.Errorf("error checking student email: %w", err)
		}
		if taken {
			return nil, false, apperrors.ErrEmailAlreadyExists
		}
	}

	updated := &models.Student{
		ID:        id,
		Name:      req.Name,
		Surname:   req.Surname,
		Email:     req.Email,
		Address:   req.Address,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: existing.UpdatedAt,
	}
	if updated.SameContent(existing) {
		return existing, false, nil
	}

	changed, err := s.studentRepo.Update(ctx, updated)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentEmailExists) {
			return nil, false, apperrors.ErrEmailAlreadyExists
		}
		return nil, false, fmt.Errorf("error updating student: %w", err)
	}
	if !changed {
		return existing, false, nil
	}

	return updated, true, nil
}

// Delete removes a student together with its enrollments
func (s *studentServiceImpl) Delete(ctx context.Context, id int64) (*models.DeleteResult, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.CountByStudent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error counting student enrollments: %w", err)
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrStudentHasEnrollments):
			return nil, apperrors.ErrStudentHasRelations
		case errors.Is(err, repositories.ErrStudentNotFound):
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error deleting student: %w", err)
	}

	if enrollments > 0 {
		logger.Info().Int64("studentID", id).Int64("enrollments", enrollments).Msg("Student deleted with its enrollments")
	}
	return &models.DeleteResult{ID: id, RemovedEnrollments: enrollments}, nil
}

// ListEnrolledSubjects returns the subjects a student is enrolled in
func (s *studentServiceImpl) ListEnrolledSubjects(ctx context.Context, id int64) ([]*models.SubjectSummary, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	subjects, err := s.studentRepo.GetEnrolledSubjects(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolled subjects: %w", err)
	}
	return subjects, nil
}
