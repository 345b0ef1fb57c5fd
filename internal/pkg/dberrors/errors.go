package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// PostgreSQL error codes handled by the repositories.
const (
	UniqueViolationCode     = "23505"
	ForeignKeyViolationCode = "23503"
)

// Constraint names declared in migrations/001_init_schema.sql.
const (
	StudentEmailConstraint        = "students_email_key"
	SubjectNameConstraint         = "subjects_name_key"
	SubjectTeacherFKConstraint    = "subjects_teacher_id_fkey"
	EnrollmentPairConstraint      = "enrollments_student_subject_key"
	EnrollmentStudentFKConstraint = "enrollments_student_id_fkey"
	EnrollmentSubjectFKConstraint = "enrollments_subject_id_fkey"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	// Check if the error is a PgError, if the code is unique_violation (23505),
	// and if the constraint name matches the provided one.
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolationCode && pgErr.ConstraintName == constraintName
}

// IsDuplicateKeyError reports any unique violation regardless of the constraint.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolationCode
}

// IsForeignKeyError reports a foreign_key_violation (23503). An empty
// constraintName matches any foreign key.
func IsForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != ForeignKeyViolationCode {
		return false
	}
	return constraintName == "" || pgErr.ConstraintName == constraintName
}
