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

// Student error types
var (
	ErrStudentNotFound = ErrNotFound
	// ErrStudentEmailExists is returned when the email unique constraint fires
	ErrStudentEmailExists = errors.New("student with this email already exists")
	// ErrStudentHasEnrollments is returned when an enrollment foreign key blocks the delete
	ErrStudentHasEnrollments = errors.New("student has associated enrollments")
)

var studentColumns = []string{"id", "name", "surname", "email", "address", "created_at", "updated_at"}

// StudentRepository handles student database operations
type StudentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanStudent(row scanner) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(&s.ID, &s.Name, &s.Surname, &s.Email, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// Create inserts a student and fills in its generated fields
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("name", "surname", "email", "address").
		Values(student.Name, student.Surname, student.Email, student.Address).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.StudentEmailConstraint) {
			return ErrStudentEmailExists
		}
		logger.Error().Err(err).Str("email", student.Email).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// GetAll retrieves all students ordered by surname, then name
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("surname ASC", "name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all students SQL")
		return nil, fmt.Errorf("failed to build get all students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row during get all")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// EmailExists checks whether another student already uses email.
// A zero excludeID checks every student.
func (r *StudentRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	query := r.sb.Select("1").From("students").Where(squirrel.Eq{"email": email})
	if excludeID > 0 {
		query = query.Where(squirrel.NotEq{"id": excludeID})
	}

	exists, err := existsQuery(ctx, r.db, query)
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error checking student email")
		return false, fmt.Errorf("error checking student email: %w", err)
	}
	return exists, nil
}

// Update writes the editable fields of student. It reports false when the
// stored row already held the same values, in which case nothing is written.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) (bool, error) {
	sql, args, err := r.sb.Update("students").
		Set("name", student.Name).
		Set("surname", student.Surname).
		Set("email", student.Email).
		Set("address", student.Address).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": student.ID}).
		Where(squirrel.Expr("(name, surname, email, address) IS DISTINCT FROM (?, ?, ?, ?)",
			student.Name, student.Surname, student.Email, student.Address)).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return false, fmt.Errorf("failed to build update student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		if dberrors.IsDuplicateConstraintError(err, dberrors.StudentEmailConstraint) {
			return false, ErrStudentEmailExists
		}
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return false, fmt.Errorf("error updating student: %w", err)
	}

	return true, nil
}

// Delete removes a student. Enrollments are removed by the store cascade.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyError(err, "") {
			return ErrStudentHasEnrollments
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// GetEnrolledSubjects lists the subjects a student is enrolled in, ordered by name
func (r *StudentRepository) GetEnrolledSubjects(ctx context.Context, studentID int64) ([]*models.SubjectSummary, error) {
	sql, args, err := r.sb.Select("s.id", "s.name", "s.description").
		From("subjects s").
		Join("enrollments e ON e.subject_id = s.id").
		Where(squirrel.Eq{"e.student_id": studentID}).
		OrderBy("s.name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get enrolled subjects SQL")
		return nil, fmt.Errorf("failed to build get enrolled subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing get enrolled subjects query")
		return nil, fmt.Errorf("error querying enrolled subjects: %w", err)
	}
	defer rows.Close()

	return collectSubjectSummaries(rows)
}

func collectSubjectSummaries(rows pgx.Rows) ([]*models.SubjectSummary, error) {
	subjects := []*models.SubjectSummary{}
	for rows.Next() {
		s := &models.SubjectSummary{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Description); err != nil {
			logger.Error().Err(err).Msg("Error scanning subject summary row")
			return nil, fmt.Errorf("error scanning subject row: %w", err)
		}
		subjects = append(subjects, s)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating subject summary rows")
		return nil, fmt.Errorf("error iterating subject rows: %w", err)
	}
	return subjects, nil
}
