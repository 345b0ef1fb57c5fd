package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/academics/internal/app/models"
	"github.com/yigit/academics/internal/pkg/dberrors"
	"github.com/yigit/academics/internal/pkg/logger"
)

// Enrollment error types
var (
	ErrEnrollmentNotFound = ErrNotFound
	// ErrEnrollmentExists is returned when the (student, subject) pair is already stored
	ErrEnrollmentExists = errors.New("student is already enrolled in this subject")
	// ErrEnrollmentStudentNotFound is returned when student_id points at no student
	ErrEnrollmentStudentNotFound = errors.New("referenced student does not exist")
	// ErrEnrollmentSubjectNotFound is returned when subject_id points at no subject
	ErrEnrollmentSubjectNotFound = errors.New("referenced subject does not exist")
)

var enrollmentColumns = []string{"id", "student_id", "subject_id", "enrolled_at", "created_at", "updated_at"}

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// Create inserts an enrollment. The unique pair constraint is the final guard
// against concurrent duplicates.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "subject_id", "enrolled_at").
		Values(enrollment.StudentID, enrollment.SubjectID, enrollment.EnrolledAt).
		Suffix("RETURNING id, enrolled_at, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create enrollment SQL")
		return fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&enrollment.ID, &enrollment.EnrolledAt, &enrollment.CreatedAt, &enrollment.UpdatedAt,
	)
	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, dberrors.EnrollmentPairConstraint):
			return ErrEnrollmentExists
		case dberrors.IsForeignKeyError(err, dberrors.EnrollmentStudentFKConstraint):
			return ErrEnrollmentStudentNotFound
		case dberrors.IsForeignKeyError(err, dberrors.EnrollmentSubjectFKConstraint):
			return ErrEnrollmentSubjectNotFound
		}
		logger.Error().Err(err).
			Int64("studentID", enrollment.StudentID).
			Int64("subjectID", enrollment.SubjectID).
			Msg("Error executing create enrollment query")
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// GetByStudentAndSubject retrieves the enrollment of a (student, subject) pair
func (r *EnrollmentRepository) GetByStudentAndSubject(ctx context.Context, studentID, subjectID int64) (*models.Enrollment, error) {
	sql, args, err := r.sb.Select(enrollmentColumns...).
		From("enrollments").
		Where(squirrel.Eq{"student_id": studentID, "subject_id": subjectID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get enrollment SQL")
		return nil, fmt.Errorf("failed to build get enrollment query: %w", err)
	}

	e := &models.Enrollment{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&e.ID, &e.StudentID, &e.SubjectID, &e.EnrolledAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEnrollmentNotFound
		}
		logger.Error().Err(err).Int64("studentID", studentID).Int64("subjectID", subjectID).Msg("Error scanning enrollment row")
		return nil, fmt.Errorf("error getting enrollment: %w", err)
	}

	return e, nil
}

// CountByStudent counts the enrollments of a student
func (r *EnrollmentRepository) CountByStudent(ctx context.Context, studentID int64) (int64, error) {
	count, err := countQuery(ctx, r.db,
		r.sb.Select("COUNT(*)").From("enrollments").Where(squirrel.Eq{"student_id": studentID}))
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error counting enrollments by student")
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}
	return count, nil
}

// CountBySubject counts the enrollments of a subject
func (r *EnrollmentRepository) CountBySubject(ctx context.Context, subjectID int64) (int64, error) {
	count, err := countQuery(ctx, r.db,
		r.sb.Select("COUNT(*)").From("enrollments").Where(squirrel.Eq{"subject_id": subjectID}))
	if err != nil {
		logger.Error().Err(err).Int64("subjectID", subjectID).Msg("Error counting enrollments by subject")
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}
	return count, nil
}
