package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: UniqueViolationCode, ConstraintName: StudentEmailConstraint}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"matching constraint", dup, StudentEmailConstraint, true},
		{"wrapped error", fmt.Errorf("insert: %w", dup), StudentEmailConstraint, true},
		{"other constraint", dup, SubjectNameConstraint, false},
		{"foreign key code", &pgconn.PgError{Code: ForeignKeyViolationCode, ConstraintName: StudentEmailConstraint}, StudentEmailConstraint, false},
		{"plain error", errors.New("boom"), StudentEmailConstraint, false},
		{"nil", nil, StudentEmailConstraint, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateConstraintError(tt.err, tt.constraint); got != tt.want {
				t.Errorf("IsDuplicateConstraintError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDuplicateKeyError(t *testing.T) {
	if !IsDuplicateKeyError(&pgconn.PgError{Code: UniqueViolationCode}) {
		t.Error("expected unique violation to be detected")
	}
	if IsDuplicateKeyError(&pgconn.PgError{Code: ForeignKeyViolationCode}) {
		t.Error("foreign key violation must not be reported as duplicate")
	}
}

func TestIsForeignKeyError(t *testing.T) {
	fk := &pgconn.PgError{Code: ForeignKeyViolationCode, ConstraintName: SubjectTeacherFKConstraint}

	if !IsForeignKeyError(fk, "") {
		t.Error("empty constraint name should match any foreign key violation")
	}
	if !IsForeignKeyError(fmt.Errorf("delete: %w", fk), SubjectTeacherFKConstraint) {
		t.Error("expected wrapped foreign key violation to match")
	}
	if IsForeignKeyError(fk, EnrollmentStudentFKConstraint) {
		t.Error("different constraint must not match")
	}
	if IsForeignKeyError(errors.New("boom"), "") {
		t.Error("plain error must not match")
	}
}
