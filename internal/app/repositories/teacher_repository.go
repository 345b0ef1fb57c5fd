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

// Teacher error types
var (
	ErrTeacherNotFound = ErrNotFound
	// ErrTeacherHasSubjects is returned when a subject still references the teacher
	ErrTeacherHasSubjects = errors.New("teacher is assigned to one or more subjects")
)

var teacherColumns = []string{"id", "name", "surname", "specialty", "created_at", "updated_at"}

// TeacherRepository handles teacher database operations
type TeacherRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db DBTX) *TeacherRepository {
	return &TeacherRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanTeacher(row scanner) (*models.Teacher, error) {
	t := &models.Teacher{}
	err := row.Scan(&t.ID, &t.Name, &t.Surname, &t.Specialty, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// Create inserts a teacher and fills in its generated fields
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	sql, args, err := r.sb.Insert("teachers").
		Columns("name", "surname", "specialty").
		Values(teacher.Name, teacher.Surname, teacher.Specialty).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create teacher SQL")
		return fmt.Errorf("failed to build create teacher query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&teacher.ID, &teacher.CreatedAt, &teacher.UpdatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create teacher query")
		return fmt.Errorf("error creating teacher: %w", err)
	}

	return nil
}

// GetByID retrieves a teacher by ID
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	sql, args, err := r.sb.Select(teacherColumns...).
		From("teachers").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get teacher by ID SQL")
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	teacher, err := scanTeacher(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeacherNotFound
		}
		logger.Error().Err(err).Int64("teacherID", id).Msg("Error scanning teacher row")
		return nil, fmt.Errorf("error getting teacher by ID: %w", err)
	}

	return teacher, nil
}

// GetAll retrieves all teachers ordered by surname, then name
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	sql, args, err := r.sb.Select(teacherColumns...).
		From("teachers").
		OrderBy("surname ASC", "name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all teachers SQL")
		return nil, fmt.Errorf("failed to build get all teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all teachers query")
		return nil, fmt.Errorf("error querying teachers: %w", err)
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning teacher row during get all")
			return nil, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teachers = append(teachers, teacher)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating teacher rows")
		return nil, fmt.Errorf("error iterating teacher rows: %w", err)
	}

	return teachers, nil
}

// Update writes the editable fields of teacher, reporting false when nothing differed
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) (bool, error) {
	sql, args, err := r.sb.Update("teachers").
		Set("name", teacher.Name).
		Set("surname", teacher.Surname).
		Set("specialty", teacher.Specialty).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": teacher.ID}).
		Where(squirrel.Expr("(name, surname, specialty) IS DISTINCT FROM (?, ?, ?::varchar)",
			teacher.Name, teacher.Surname, teacher.Specialty)).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update teacher SQL")
		return false, fmt.Errorf("failed to build update teacher query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&teacher.CreatedAt, &teacher.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		logger.Error().Err(err).Int64("teacherID", teacher.ID).Msg("Error executing update teacher query")
		return false, fmt.Errorf("error updating teacher: %w", err)
	}

	return true, nil
}

// Delete removes a teacher. The subjects foreign key restricts deleting an assigned teacher.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("teachers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete teacher SQL")
		return fmt.Errorf("failed to build delete teacher query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyError(err, dberrors.SubjectTeacherFKConstraint) {
			return ErrTeacherHasSubjects
		}
		logger.Error().Err(err).Int64("teacherID", id).Msg("Error executing delete teacher query")
		return fmt.Errorf("error deleting teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrTeacherNotFound
	}

	return nil
}

// GetTaughtSubjects lists the subjects assigned to a teacher, ordered by name
func (r *TeacherRepository) GetTaughtSubjects(ctx context.Context, teacherID int64) ([]*models.SubjectSummary, error) {
	sql, args, err := r.sb.Select("id", "name", "description").
		From("subjects").
		Where(squirrel.Eq{"teacher_id": teacherID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get taught subjects SQL")
		return nil, fmt.Errorf("failed to build get taught subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("teacherID", teacherID).Msg("Error executing get taught subjects query")
		return nil, fmt.Errorf("error querying taught subjects: %w", err)
	}
	defer rows.Close()

	return collectSubjectSummaries(rows)
}
