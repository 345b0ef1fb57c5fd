package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/academics/internal/app/models"
	"github.com/yigit/academics/internal/app/models/dto"
	"github.com/yigit/academics/internal/app/repositories"
	"github.com/yigit/academics/internal/pkg/apperrors"
	"github.com/yigit/academics/internal/pkg/validation"
)

// TeacherService defines the interface for teacher-related operations
type TeacherService interface {
	Register(ctx context.Context, req *dto.TeacherRequest) (*models.Teacher, error)
	List(ctx context.Context) ([]*models.Teacher, error)
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	Update(ctx context.Context, id int64, req *dto.TeacherRequest) (*models.Teacher, bool, error)
	Delete(ctx context.Context, id int64) (*models.DeleteResult, error)
	ListTaughtSubjects(ctx context.Context, id int64) ([]*models.SubjectSummary, error)
}

type teacherServiceImpl struct {
	teacherRepo TeacherRepository
	subjectRepo SubjectRepository
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo TeacherRepository, subjectRepo SubjectRepository) TeacherService {
	return &teacherServiceImpl{
		teacherRepo: teacherRepo,
		subjectRepo: subjectRepo,
	}
}

// Register creates a teacher
func (s *teacherServiceImpl) Register(ctx context.Context, req *dto.TeacherRequest) (*models.Teacher, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		Name:      req.Name,
		Surname:   req.Surname,
		Specialty: req.Specialty,
	}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, fmt.Errorf("error creating teacher: %w", err)
	}
	return teacher, nil
}

// List returns all teachers ordered by surname, then name
func (s *teacherServiceImpl) List(ctx context.Context) ([]*models.Teacher, error) {
	teachers, err := s.teacherRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	return teachers, nil
}

// GetByID retrieves a teacher by ID
func (s *teacherServiceImpl) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return teacher, nil
}

// Update replaces the editable fields of a teacher
func (s *teacherServiceImpl) Update(ctx context.Context, id int64, req *dto.TeacherRequest) (*models.Teacher, bool, error) {
	if err := validation.Validate(req); err != nil {
		return nil, false, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	updated := &models.Teacher{
		ID:        id,
		Name:      req.Name,
		Surname:   req.Surname,
		Specialty: req.Specialty,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: existing.UpdatedAt,
	}
	if updated.SameContent(existing) {
		return existing, false, nil
	}

	changed, err := s.teacherRepo.Update(ctx, updated)
	if err != nil {
		return nil, false, fmt.Errorf("error updating teacher: %w", err)
	}
	if !changed {
		return existing, false, nil
	}
	return updated, true, nil
}

// Delete removes a teacher that no subject references. Deletion is never cascaded.
func (s *teacherServiceImpl) Delete(ctx context.Context, id int64) (*models.DeleteResult, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	assigned, err := s.subjectRepo.ExistsByTeacher(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error checking teacher subjects: %w", err)
	}
	if assigned {
		return nil, apperrors.ErrTeacherHasSubjects
	}

	if err := s.teacherRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeacherHasSubjects):
			// A subject was assigned between the check and the delete
			return nil, apperrors.ErrTeacherHasSubjects
		case errors.Is(err, repositories.ErrTeacherNotFound):
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error deleting teacher: %w", err)
	}

	return &models.DeleteResult{ID: id}, nil
}

// ListTaughtSubjects returns the subjects assigned to a teacher
func (s *teacherServiceImpl) ListTaughtSubjects(ctx context.Context, id int64) ([]*models.SubjectSummary, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	subjects, err := s.teacherRepo.GetTaughtSubjects(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving taught subjects: %w", err)
	}
	return subjects, nil
}
