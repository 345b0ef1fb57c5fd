package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Shared repository errors
var (
	// ErrNotFound is returned when a row does not exist
	ErrNotFound = errors.New("record not found")
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx, so every
// repository can run either on the pool or inside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is implemented by pgx.Row and pgx.Rows
type scanner interface {
	Scan(dest ...any) error
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	TeacherRepository    *TeacherRepository
	SubjectRepository    *SubjectRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		TeacherRepository:    NewTeacherRepository(db),
		SubjectRepository:    NewSubjectRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
	}
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// existsQuery wraps a select in SELECT EXISTS(...)
func existsQuery(ctx context.Context, db DBTX, query squirrel.SelectBuilder) (bool, error) {
	sql, args, err := query.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err := db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// countQuery runs a SELECT COUNT(*) builder
func countQuery(ctx context.Context, db DBTX, query squirrel.SelectBuilder) (int64, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
