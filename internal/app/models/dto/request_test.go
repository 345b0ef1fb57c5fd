package dto

import (
	"encoding/json"
	"testing"
)

func TestNullable_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValid bool
		wantValue int64
	}{
		{name: "absent", body: `{}`},
		{name: "null", body: `{"teacherId":null}`, wantSet: true},
		{name: "value", body: `{"teacherId":7}`, wantSet: true, wantValid: true, wantValue: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateSubjectRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			got := req.TeacherID
			if got.Set != tt.wantSet || got.Valid != tt.wantValid || got.Value != tt.wantValue {
				t.Errorf("got %+v, want set=%v valid=%v value=%d", got, tt.wantSet, tt.wantValid, tt.wantValue)
			}
		})
	}
}

func TestNullable_WrongType(t *testing.T) {
	var req UpdateSubjectRequest
	if err := json.Unmarshal([]byte(`{"teacherId":"abc"}`), &req); err == nil {
		t.Fatal("expected type error")
	}
}

func TestUpdateSubjectRequest_IsEmpty(t *testing.T) {
	var req UpdateSubjectRequest
	if !req.IsEmpty() {
		t.Error("zero request should be empty")
	}
	req.Description = Null[string]()
	if req.IsEmpty() {
		t.Error("explicit null description should not be empty")
	}
	if req.Description.Ptr() != nil {
		t.Error("null description should have nil pointer")
	}
}
