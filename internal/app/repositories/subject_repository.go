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

// Subject error types
var (
	ErrSubjectNotFound = ErrNotFound
	// ErrSubjectNameExists is returned when the name unique constraint fires
	ErrSubjectNameExists = errors.New("subject with this name already exists")
	// ErrSubjectTeacherNotFound is returned when teacher_id points at no teacher
	ErrSubjectTeacherNotFound = errors.New("referenced teacher does not exist")
	// ErrSubjectHasReferences is returned when a foreign key blocks the delete
	ErrSubjectHasReferences = errors.New("subject has associated records")
)

// SubjectRepository handles subject database operations
type SubjectRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db DBTX) *SubjectRepository {
	return &SubjectRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// selectWithTeacher joins the assigned teacher's identifying fields
func (r *SubjectRepository) selectWithTeacher() squirrel.SelectBuilder {
	return r.sb.Select(
		"s.id", "s.name", "s.description", "s.teacher_id", "s.created_at", "s.updated_at",
		"t.id", "t.name", "t.surname", "t.specialty",
	).
		From("subjects s").
		LeftJoin("teachers t ON t.id = s.teacher_id")
}

func scanSubjectWithTeacher(row scanner) (*models.Subject, error) {
	s := &models.Subject{}
	var (
		teacherID                   *int64
		teacherName, teacherSurname *string
		teacherSpecialty            *string
	)

	err := row.Scan(
		&s.ID, &s.Name, &s.Description, &s.TeacherID, &s.CreatedAt, &s.UpdatedAt,
		&teacherID, &teacherName, &teacherSurname, &teacherSpecialty,
	)
	if err != nil {
		return nil, err
	}

	if teacherID != nil {
		s.AssignedTeacher = &models.TeacherSummary{
			ID:        *teacherID,
			Name:      derefString(teacherName),
			Surname:   derefString(teacherSurname),
			Specialty: teacherSpecialty,
		}
	}
	return s, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// mapSubjectWriteError translates constraint violations raised by insert/update
func mapSubjectWriteError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, dberrors.SubjectNameConstraint):
		return ErrSubjectNameExists
	case dberrors.IsForeignKeyError(err, dberrors.SubjectTeacherFKConstraint):
		return ErrSubjectTeacherNotFound
	default:
		return nil
	}
}

// Create inserts a subject and fills in its generated fields
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	sql, args, err := r.sb.Insert("subjects").
		Columns("name", "description", "teacher_id").
		Values(subject.Name, subject.Description, subject.TeacherID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create subject SQL")
		return fmt.Errorf("failed to build create subject query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&subject.ID, &subject.CreatedAt, &subject.UpdatedAt)
	if err != nil {
		if mapped := mapSubjectWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Str("name", subject.Name).Msg("Error executing create subject query")
		return fmt.Errorf("error creating subject: %w", err)
	}

	return nil
}

// GetByID retrieves a subject joined with its assigned teacher
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	sql, args, err := r.selectWithTeacher().
		Where(squirrel.Eq{"s.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get subject by ID SQL")
		return nil, fmt.Errorf("failed to build get subject query: %w", err)
	}

	subject, err := scanSubjectWithTeacher(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubjectNotFound
		}
		logger.Error().Err(err).Int64("subjectID", id).Msg("Error scanning subject row")
		return nil, fmt.Errorf("error getting subject by ID: %w", err)
	}

	return subject, nil
}

// GetAll retrieves all subjects with their teachers, ordered by name
func (r *SubjectRepository) GetAll(ctx context.Context) ([]*models.Subject, error) {
	sql, args, err := r.selectWithTeacher().
		OrderBy("s.name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all subjects SQL")
		return nil, fmt.Errorf("failed to build get all subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all subjects query")
		return nil, fmt.Errorf("error querying subjects: %w", err)
	}
	defer rows.Close()

	subjects := []*models.Subject{}
	for rows.Next() {
		subject, err := scanSubjectWithTeacher(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning subject row during get all")
			return nil, fmt.Errorf("error scanning subject row: %w", err)
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating subject rows")
		return nil, fmt.Errorf("error iterating subject rows: %w", err)
	}

	return subjects, nil
}

// NameExists checks whether another subject already uses name.
// A zero excludeID checks every subject.
func (r *SubjectRepository) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := r.sb.Select("1").From("subjects").Where(squirrel.Eq{"name": name})
	if excludeID > 0 {
		query = query.Where(squirrel.NotEq{"id": excludeID})
	}

	exists, err := existsQuery(ctx, r.db, query)
	if err != nil {
		logger.Error().Err(err).Str("name", name).Msg("Error checking subject name")
		return false, fmt.Errorf("error checking subject name: %w", err)
	}
	return exists, nil
}

// ExistsByTeacher reports whether any subject references teacherID
func (r *SubjectRepository) ExistsByTeacher(ctx context.Context, teacherID int64) (bool, error) {
	exists, err := existsQuery(ctx, r.db,
		r.sb.Select("1").From("subjects").Where(squirrel.Eq{"teacher_id": teacherID}))
	if err != nil {
		logger.Error().Err(err).Int64("teacherID", teacherID).Msg("Error checking subjects by teacher")
		return false, fmt.Errorf("error checking subjects by teacher: %w", err)
	}
	return exists, nil
}

// Update writes name, description and teacher_id, reporting false when nothing differed
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) (bool, error) {
	sql, args, err := r.sb.Update("subjects").
		Set("name", subject.Name).
		Set("description", subject.Description).
		Set("teacher_id", subject.TeacherID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": subject.ID}).
		Where(squirrel.Expr("(name, description, teacher_id) IS DISTINCT FROM (?, ?::varchar, ?::bigint)",
			subject.Name, subject.Description, subject.TeacherID)).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update subject SQL")
		return false, fmt.Errorf("failed to build update subject query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&subject.CreatedAt, &subject.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		if mapped := mapSubjectWriteError(err); mapped != nil {
			return false, mapped
		}
		logger.Error().Err(err).Int64("subjectID", subject.ID).Msg("Error executing update subject query")
		return false, fmt.Errorf("error updating subject: %w", err)
	}

	return true, nil
}

// AssignTeacher sets teacher_id of a subject
func (r *SubjectRepository) AssignTeacher(ctx context.Context, subjectID, teacherID int64) error {
	sql, args, err := r.sb.Update("subjects").
		Set("teacher_id", teacherID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": subjectID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building assign teacher SQL")
		return fmt.Errorf("failed to build assign teacher query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if mapped := mapSubjectWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Int64("subjectID", subjectID).Int64("teacherID", teacherID).Msg("Error executing assign teacher query")
		return fmt.Errorf("error assigning teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSubjectNotFound
	}
	return nil
}

// Delete removes a subject. Enrollments are removed by the store cascade.
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("subjects").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete subject SQL")
		return fmt.Errorf("failed to build delete subject query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyError(err, "") {
			return ErrSubjectHasReferences
		}
		logger.Error().Err(err).Int64("subjectID", id).Msg("Error executing delete subject query")
		return fmt.Errorf("error deleting subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSubjectNotFound
	}
	return nil
}

// GetEnrolledStudents lists the students enrolled in a subject, ordered by surname, then name
func (r *SubjectRepository) GetEnrolledStudents(ctx context.Context, subjectID int64) ([]*models.StudentSummary, error) {
	sql, args, err := r.sb.Select("st.id", "st.name", "st.surname", "st.email").
		From("students st").
		Join("enrollments e ON e.student_id = st.id").
		Where(squirrel.Eq{"e.subject_id": subjectID}).
		OrderBy("st.surname ASC", "st.name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get enrolled students SQL")
		return nil, fmt.Errorf("failed to build get enrolled students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subjectID", subjectID).Msg("Error executing get enrolled students query")
		return nil, fmt.Errorf("error querying enrolled students: %w", err)
	}
	defer rows.Close()

	students := []*models.StudentSummary{}
	for rows.Next() {
		s := &models.StudentSummary{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Surname, &s.Email); err != nil {
			logger.Error().Err(err).Msg("Error scanning enrolled student row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating enrolled student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}
