package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/yigit/academics/internal/app/models/dto"
	"github.com/yigit/academics/internal/app/repositories"
	"github.com/yigit/academics/internal/pkg/apperrors"
)

func updateRequest(t *testing.T, body string) *dto.UpdateSubjectRequest {
	t.Helper()
	req := &dto.UpdateSubjectRequest{}
	if err := json.Unmarshal([]byte(body), req); err != nil {
		t.Fatalf("unmarshal %s: %v", body, err)
	}
	return req
}

func TestSubjectService_Create(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	teacher, _ := f.teachers.Register(ctx, ana())

	subject, err := f.subjects.Create(ctx, &dto.CreateSubjectRequest{Name: "Math", TeacherID: &teacher.ID})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if subject.AssignedTeacher == nil || subject.AssignedTeacher.ID != teacher.ID {
		t.Errorf("expected assigned teacher %d, got %+v", teacher.ID, subject.AssignedTeacher)
	}

	_, err = f.subjects.Create(ctx, &dto.CreateSubjectRequest{Name: "Math"})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("expected name conflict, got %v", err)
	}

	missing := int64(99)
	_, err = f.subjects.Create(ctx, &dto.CreateSubjectRequest{Name: "Physics", TeacherID: &missing})
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected teacher not found, got %v", err)
	}
	if len(f.store.subjects) != 1 {
		t.Errorf("expected one subject row, got %d", len(f.store.subjects))
	}
}

func TestSubjectService_Create_StoreFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		want     error
	}{
		{name: "unique violation", storeErr: repositories.ErrSubjectNameExists, want: apperrors.ErrConflict},
		{name: "foreign key violation", storeErr: repositories.ErrSubjectTeacherNotFound, want: apperrors.ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.subjectRepo.createErr = tt.storeErr

			_, err := f.subjects.Create(context.Background(), &dto.CreateSubjectRequest{Name: "Math"})
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSubjectService_Update(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantErr     error
		wantChanged bool
		check       func(t *testing.T, f *fixture)
	}{
		{name: "empty payload", body: `{}`, wantErr: apperrors.ErrBadRequest},
		{name: "invalid teacher id", body: `{"teacherId":0}`, wantErr: apperrors.ErrValidationFailed},
		{name: "name taken by other subject", body: `{"name":"Physics"}`, wantErr: apperrors.ErrConflict},
		{name: "unknown new teacher", body: `{"teacherId":99}`, wantErr: apperrors.ErrResourceNotFound},
		{name: "same values", body: `{"name":"Math","teacherId":1}`},
		{
			name: "explicit null clears teacher", body: `{"teacherId":null}`, wantChanged: true,
			check: func(t *testing.T, f *fixture) {
				if f.store.subjects[1].TeacherID != nil {
					t.Error("teacher should be cleared")
				}
			},
		},
		{
			name: "absent fields unchanged", body: `{"description":"Numbers"}`, wantChanged: true,
			check: func(t *testing.T, f *fixture) {
				s := f.store.subjects[1]
				if s.TeacherID == nil || *s.TeacherID != 1 || s.Name != "Math" {
					t.Errorf("untouched fields changed: %+v", s)
				}
				if s.Description == nil || *s.Description != "Numbers" {
					t.Errorf("description not updated: %+v", s.Description)
				}
			},
		},
		{
			name: "reassign teacher", body: `{"teacherId":2}`, wantChanged: true,
			check: func(t *testing.T, f *fixture) {
				if *f.store.subjects[1].TeacherID != 2 {
					t.Error("teacher should be reassigned")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			ctx := context.Background()
			teacher, _ := f.teachers.Register(ctx, ana())
			_, _ = f.teachers.Register(ctx, &dto.TeacherRequest{Name: "Luis", Surname: "Vega"})
			if _, err := f.subjects.Create(ctx, &dto.CreateSubjectRequest{Name: "Math", TeacherID: &teacher.ID}); err != nil {
				t.Fatal(err)
			}
			if _, err := f.subjects.Create(ctx, &dto.CreateSubjectRequest{Name: "Physics"}); err != nil {
				t.Fatal(err)
			}

			subject, changed, err := f.subjects.Update(ctx, 1, updateRequest(t, tt.body))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if subject.ID != 1 {
				t.Errorf("unexpected subject %+v", subject)
			}
			if tt.check != nil {
				tt.check(t, f)
			}
		})
	}
}

func TestSubjectService_Update_NotFound(t *testing.T) {
	f := newFixture()

	_, _, err := f.subjects.Update(context.Background(), 5, updateRequest(t, `{"name":"Chemistry"}`))
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSubjectService_AssignTeacher(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	teacher, _ := f.teachers.Register(ctx, ana())
	subject, _ := f.subjects.Create(ctx, &dto.CreateSubjectRequest{Name: "Math"})

	assigned, err := f.subjects.AssignTeacher(ctx, subject.ID, &dto.AssignTeacherRequest{TeacherID: teacher.ID})
	if err != nil {
		t.Fatalf("AssignTeacher() error = %v", err)
	}
	if assigned.AssignedTeacher == nil || assigned.AssignedTeacher.Surname != "Ruiz" {
		t.Errorf("expected joined teacher, got %+v", assigned.AssignedTeacher)
	}
}

func TestSubjectService_AssignTeacher_Errors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	teacher, _ := f.teachers.Register(ctx, ana())
	subject, _ := f.subjects.Create(ctx, &dto.CreateSubjectRequest{Name: "Math", TeacherID: &teacher.ID})

	_, err := f.subjects.AssignTeacher(ctx, subject.ID, &dto.AssignTeacherRequest{TeacherID: 99})
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected teacher not found, got %v", err)
	}
	if got := f.store.subjects[subject.ID].TeacherID; got == nil || *got != teacher.ID {
		t.Error("teacher reference must be unchanged")
	}

	_, err = f.subjects.AssignTeacher(ctx, 42, &dto.AssignTeacherRequest{TeacherID: teacher.ID})
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected subject not found, got %v", err)
	}

	_, err = f.subjects.AssignTeacher(ctx, subject.ID, &dto.AssignTeacherRequest{TeacherID: -1})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestSubjectService_Delete_CascadesEnrollments(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	subject, _ := f.subjects.Create(ctx, &dto.CreateSubjectRequest{Name: "Math"})
	student, _ := f.students.Register(ctx, leo())
	if _, err := f.enrollments.Enroll(ctx, &dto.EnrollmentRequest{StudentID: student.ID, SubjectID: subject.ID}); err != nil {
		t.Fatal(err)
	}

	result, err := f.subjects.Delete(ctx, subject.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if result.RemovedEnrollments != 1 {
		t.Errorf("expected 1 removed enrollment, got %d", result.RemovedEnrollments)
	}
	if len(f.store.enrollments) != 0 {
		t.Error("enrollments should be cascaded")
	}
	if _, ok := f.store.students[student.ID]; !ok {
		t.Error("student must survive subject deletion")
	}

	_, err = f.subjects.Delete(ctx, subject.ID)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestSubjectService_ListOrderedWithTeacher(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	teacher, _ := f.teachers.Register(ctx, ana())
	_, _ = f.subjects.Create(ctx, &dto.CreateSubjectRequest{Name: "Physics"})
	_, _ = f.subjects.Create(ctx, &dto.CreateSubjectRequest{Name: "Algebra", TeacherID: &teacher.ID})

	subjects, err := f.subjects.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(subjects) != 2 || subjects[0].Name != "Algebra" {
		t.Fatalf("unexpected order %+v", subjects)
	}
	if subjects[0].AssignedTeacher == nil || subjects[1].AssignedTeacher != nil {
		t.Errorf("unexpected teacher join: %+v / %+v", subjects[0].AssignedTeacher, subjects[1].AssignedTeacher)
	}
}
