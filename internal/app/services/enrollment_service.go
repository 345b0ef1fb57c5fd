package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yigit/academics/internal/app/models"
	"github.com/yigit/academics/internal/app/models/dto"
	"github.com/yigit/academics/internal/app/repositories"
	"github.com/yigit/academics/internal/pkg/apperrors"
	"github.com/yigit/academics/internal/pkg/validation"
)

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	// Enroll creates the enrollment of a student in a subject. When the pair is
	// already enrolled it returns the existing receipt together with a conflict error.
	Enroll(ctx context.Context, req *dto.EnrollmentRequest) (*models.EnrollmentReceipt, error)
}

type enrollmentServiceImpl struct {
	enrollmentRepo EnrollmentRepository
	studentRepo    StudentRepository
	subjectRepo    SubjectRepository
	now            func() time.Time
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo EnrollmentRepository, studentRepo StudentRepository, subjectRepo SubjectRepository) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		subjectRepo:    subjectRepo,
		now:            time.Now,
	}
}

func studentDoesNotExist(id int64) error {
	return apperrors.NewResourceNotFoundError(fmt.Sprintf("The student with ID %d does not exist.", id))
}

func subjectDoesNotExist(id int64) error {
	return apperrors.NewResourceNotFoundError(fmt.Sprintf("The subject with ID %d does not exist.", id))
}

func alreadyEnrolled(student *models.Student, subject *models.Subject) error {
	return apperrors.NewConflictError(fmt.Sprintf("The student %s is already enrolled in the subject %s.", student.Name, subject.Name))
}

// Enroll validates both references and stores the enrollment once per pair
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, req *dto.EnrollmentRequest) (*models.EnrollmentReceipt, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, studentDoesNotExist(req.StudentID)
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	subject, err := s.subjectRepo.GetByID(ctx, req.SubjectID)
	if err != nil {
		if errors.Is(err, repositories.ErrSubjectNotFound) {
			return nil, subjectDoesNotExist(req.SubjectID)
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	receipt := &models.EnrollmentReceipt{
		StudentName: student.Name,
		SubjectName: subject.Name,
	}

	existing, err := s.enrollmentRepo.GetByStudentAndSubject(ctx, student.ID, subject.ID)
	switch {
	case err == nil:
		receipt.Enrollment = existing
		return receipt, alreadyEnrolled(student, subject)
	case !errors.Is(err, repositories.ErrEnrollmentNotFound):
		return nil, fmt.Errorf("error checking enrollment: %w", err)
	}

	enrollment := &models.Enrollment{
		StudentID:  student.ID,
		SubjectID:  subject.ID,
		EnrolledAt: s.now().UTC(),
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		switch {
		case errors.Is(err, repositories.ErrEnrollmentExists):
			// Lost the race against a concurrent enroll of the same pair
			existing, getErr := s.enrollmentRepo.GetByStudentAndSubject(ctx, student.ID, subject.ID)
			if getErr != nil {
				return nil, alreadyEnrolled(student, subject)
			}
			receipt.Enrollment = existing
			return receipt, alreadyEnrolled(student, subject)
		case errors.Is(err, repositories.ErrEnrollmentStudentNotFound):
			return nil, studentDoesNotExist(student.ID)
		case errors.Is(err, repositories.ErrEnrollmentSubjectNotFound):
			return nil, subjectDoesNotExist(subject.ID)
		}
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	receipt.Enrollment = enrollment
	return receipt, nil
}
