package models

// DeleteResult is returned after removing a student, teacher or subject.
type DeleteResult struct {
	ID int64 `json:"id" example:"1"`
	// RemovedEnrollments counts the enrollments the store cascaded away.
	RemovedEnrollments int64 `json:"removedEnrollments" example:"0"`
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalInt64Ptr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
