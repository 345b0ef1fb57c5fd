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

// SubjectService defines the interface for subject-related operations
type SubjectService interface {
	Create(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, error)
	List(ctx context.Context) ([]*models.Subject, error)
	GetDetails(ctx context.Context, id int64) (*models.SubjectDetails, error)
	Update(ctx context.Context, id int64, req *dto.UpdateSubjectRequest) (*models.Subject, bool, error)
	AssignTeacher(ctx context.Context, id int64, req *dto.AssignTeacherRequest) (*models.Subject, error)
	Delete(ctx context.Context, id int64) (*models.DeleteResult, error)
}

type subjectServiceImpl struct {
	subjectRepo    SubjectRepository
	teacherRepo    TeacherRepository
	enrollmentRepo EnrollmentRepository
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo SubjectRepository, teacherRepo TeacherRepository, enrollmentRepo EnrollmentRepository) SubjectService {
	return &subjectServiceImpl{
		subjectRepo:    subjectRepo,
		teacherRepo:    teacherRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func teacherDoesNotExist(id int64) error {
	return apperrors.NewResourceNotFoundError(fmt.Sprintf("The teacher with ID %d does not exist.", id))
}

// findTeacher loads the teacher a subject should reference
func (s *subjectServiceImpl) findTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return nil, teacherDoesNotExist(id)
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return teacher, nil
}

func (s *subjectServiceImpl) getSubject(ctx context.Context, id int64) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSubjectNotFound) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}
	return subject, nil
}

// mapSubjectWriteError converts store constraint violations into application errors
func mapSubjectWriteError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrSubjectNameExists):
		return apperrors.ErrSubjectNameExists
	case errors.Is(err, repositories.ErrSubjectTeacherNotFound):
		return apperrors.ErrSubjectTeacherFKey
	case errors.Is(err, repositories.ErrSubjectNotFound):
		return apperrors.ErrSubjectNotFound
	default:
		return nil
	}
}

// Create creates a subject, optionally assigned to an existing teacher
func (s *subjectServiceImpl) Create(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	taken, err := s.subjectRepo.NameExists(ctx, req.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking subject name: %w", err)
	}
	if taken {
		return nil, apperrors.ErrSubjectNameExists
	}

	var teacher *models.Teacher
	if req.TeacherID != nil {
		if teacher, err = s.findTeacher(ctx, *req.TeacherID); err != nil {
			return nil, err
		}
	}

	subject := &models.Subject{
		Name:        req.Name,
		Description: req.Description,
		TeacherID:   req.TeacherID,
	}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		if mapped := mapSubjectWriteError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("error creating subject: %w", err)
	}

	if teacher != nil {
		subject.AssignedTeacher = teacher.Summary()
	}
	return subject, nil
}

// List returns all subjects with their teachers, ordered by name
func (s *subjectServiceImpl) List(ctx context.Context) ([]*models.Subject, error) {
	subjects, err := s.subjectRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects: %w", err)
	}
	return subjects, nil
}

// GetDetails returns a subject with its teacher and enrolled students
func (s *subjectServiceImpl) GetDetails(ctx context.Context, id int64) (*models.SubjectDetails, error) {
	subject, err := s.getSubject(ctx, id)
	if err != nil {
		return nil, err
	}

	students, err := s.subjectRepo.GetEnrolledStudents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolled students: %w", err)
	}

	return &models.SubjectDetails{
		Subject:          *subject,
		EnrolledStudents: students,
	}, nil
}

// Update applies a partial update. Absent fields keep their value; explicit
// nulls clear description or teacher.
func (s *subjectServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateSubjectRequest) (*models.Subject, bool, error) {
	if req.IsEmpty() {
		return nil, false, apperrors.ErrNothingToUpdate
	}
	if err := validation.Validate(req); err != nil {
		return nil, false, err
	}

	existing, err := s.getSubject(ctx, id)
	if err != nil {
		return nil, false, err
	}

	updated := *existing
	if req.Name != nil && *req.Name != existing.Name {
		taken, err := s.subjectRepo.NameExists(ctx, *req.Name, id)
		if err != nil {
			return nil, false, fmt.Errorf("error checking subject name: %w", err)
		}
		if taken {
			return nil, false, apperrors.ErrSubjectNameExists
		}
		updated.Name = *req.Name
	}

	if req.Description.Set {
		updated.Description = req.Description.Ptr()
	}

	if req.TeacherID.Set {
		updated.TeacherID = req.TeacherID.Ptr()
		if updated.TeacherID == nil {
			updated.AssignedTeacher = nil
		} else if existing.TeacherID == nil || *existing.TeacherID != *updated.TeacherID {
			teacher, err := s.findTeacher(ctx, *updated.TeacherID)
			if err != nil {
				return nil, false, err
			}
			updated.AssignedTeacher = teacher.Summary()
		}
	}

	if updated.SameContent(existing) {
		return existing, false, nil
	}

	changed, err := s.subjectRepo.Update(ctx, &updated)
	if err != nil {
		if mapped := mapSubjectWriteError(err); mapped != nil {
			return nil, false, mapped
		}
		return nil, false, fmt.Errorf("error updating subject: %w", err)
	}
	if !changed {
		return existing, false, nil
	}

	return &updated, true, nil
}

// AssignTeacher points a subject at an existing teacher
func (s *subjectServiceImpl) AssignTeacher(ctx context.Context, id int64, req *dto.AssignTeacherRequest) (*models.Subject, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	subject, err := s.getSubject(ctx, id)
	if err != nil {
		return nil, err
	}

	teacher, err := s.findTeacher(ctx, req.TeacherID)
	if err != nil {
		return nil, err
	}

	if err := s.subjectRepo.AssignTeacher(ctx, id, teacher.ID); err != nil {
		if errors.Is(err, repositories.ErrSubjectTeacherNotFound) {
			return nil, teacherDoesNotExist(teacher.ID)
		}
		if mapped := mapSubjectWriteError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("error assigning teacher: %w", err)
	}

	subject.TeacherID = &teacher.ID
	subject.AssignedTeacher = teacher.Summary()
	return subject, nil
}

// Delete removes a subject; its enrollments are cascaded and counted in the result
func (s *subjectServiceImpl) Delete(ctx context.Context, id int64) (*models.DeleteResult, error) {
	if _, err := s.getSubject(ctx, id); err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.CountBySubject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error counting subject enrollments: %w", err)
	}

	if err := s.subjectRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSubjectHasReferences):
			return nil, apperrors.ErrSubjectHasRelations
		case errors.Is(err, repositories.ErrSubjectNotFound):
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error deleting subject: %w", err)
	}

	if enrollments > 0 {
		logger.Info().Int64("subjectID", id).Int64("enrollments", enrollments).Msg("Subject deleted with its enrollments")
	}
	return &models.DeleteResult{ID: id, RemovedEnrollments: enrollments}, nil
}
