package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/yigit/academics/internal/app/models/dto"
	"github.com/yigit/academics/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }

func TestValidate_Student(t *testing.T) {
	tests := []struct {
		name     string
		input    dto.StudentRequest
		wantErr  bool
		contains []string
	}{
		{
			name:  "valid student",
			input: dto.StudentRequest{Name: "Leo", Surname: "Diaz", Email: "leo@x.com", Address: "123 Main St"},
		},
		{
			name:    "every field invalid is reported at once",
			input:   dto.StudentRequest{Name: "L", Surname: "", Email: "not-an-email", Address: "abc"},
			wantErr: true,
			contains: []string{
				"name must be at least 2 characters long",
				"surname is required",
				"email must be a valid email address",
				"address must be at least 5 characters long",
			},
		},
		{
			name:     "name too long",
			input:    dto.StudentRequest{Name: strings.Repeat("a", 51), Surname: "Diaz", Email: "leo@x.com", Address: "123 Main St"},
			wantErr:  true,
			contains: []string{"name must be at most 50 characters long"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.input)
			if tt.wantErr != (err != nil) {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("expected ErrValidationFailed, got %v", err)
			}
			details := apperrors.Details(err)
			for _, want := range tt.contains {
				if !strings.Contains(details, want) {
					t.Errorf("details %q missing %q", details, want)
				}
			}
			if len(tt.contains) > 1 && strings.Count(details, ". ") != len(tt.contains)-1 {
				t.Errorf("expected %d messages joined with '. ', got %q", len(tt.contains), details)
			}
		})
	}
}

func TestValidate_TeacherSpecialtyOptional(t *testing.T) {
	cases := []*string{nil, strPtr(""), strPtr("Mathematics")}
	for _, specialty := range cases {
		req := dto.TeacherRequest{Name: "Ana", Surname: "Ruiz", Specialty: specialty}
		if err := Validate(&req); err != nil {
			t.Errorf("specialty %v: unexpected error %v", specialty, err)
		}
	}

	req := dto.TeacherRequest{Name: "Ana", Surname: "Ruiz", Specialty: strPtr(strings.Repeat("x", 101))}
	err := Validate(&req)
	if err == nil || !strings.Contains(apperrors.Details(err), "specialty must be at most 100 characters long") {
		t.Errorf("expected specialty length error, got %v", err)
	}
}

func TestValidate_CreateSubject(t *testing.T) {
	tests := []struct {
		name    string
		input   dto.CreateSubjectRequest
		wantErr string
	}{
		{name: "minimal", input: dto.CreateSubjectRequest{Name: "Math"}},
		{name: "with teacher", input: dto.CreateSubjectRequest{Name: "Math", TeacherID: int64Ptr(1), Description: strPtr("")}},
		{name: "short name", input: dto.CreateSubjectRequest{Name: "Ma"}, wantErr: "name must be at least 3 characters long"},
		{name: "zero teacher", input: dto.CreateSubjectRequest{Name: "Math", TeacherID: int64Ptr(0)}, wantErr: "teacherId must be a positive integer"},
		{name: "negative teacher", input: dto.CreateSubjectRequest{Name: "Math", TeacherID: int64Ptr(-3)}, wantErr: "teacherId must be a positive integer"},
		{name: "long description", input: dto.CreateSubjectRequest{Name: "Math", Description: strPtr(strings.Repeat("d", 501))}, wantErr: "description must be at most 500 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(apperrors.Details(err), tt.wantErr) {
				t.Fatalf("expected %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_UpdateSubjectNullable(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "explicit nulls clear", body: `{"description":null,"teacherId":null}`},
		{name: "absent fields", body: `{"name":"Physics"}`},
		{name: "valid teacher", body: `{"teacherId":4}`},
		{name: "zero teacher", body: `{"teacherId":0}`, wantErr: "teacherId must be a positive integer"},
		{name: "short name", body: `{"name":"Ph"}`, wantErr: "name must be at least 3 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.UpdateSubjectRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			err := Validate(&req)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(apperrors.Details(err), tt.wantErr) {
				t.Fatalf("expected %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_Enrollment(t *testing.T) {
	err := Validate(&dto.EnrollmentRequest{})
	if err == nil {
		t.Fatal("expected error for empty enrollment")
	}
	details := apperrors.Details(err)
	for _, want := range []string{"studentId is required", "subjectId is required"} {
		if !strings.Contains(details, want) {
			t.Errorf("details %q missing %q", details, want)
		}
	}

	if err := Validate(&dto.EnrollmentRequest{StudentID: 1, SubjectID: 2}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
