package services

import (
	"context"

	"github.com/yigit/academics/internal/app/models"
	"github.com/yigit/academics/internal/app/repositories"
)

// Services defined in this package:
// - StudentService: student registration, updates, deletion and enrolled subjects
// - TeacherService: teacher registration, updates, guarded deletion and taught subjects
// - SubjectService: subject CRUD, teacher assignment and enrollment details
// - EnrollmentService: enrolling students in subjects

// StudentRepository is the persistence surface the student and enrollment services need
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	Update(ctx context.Context, student *models.Student) (bool, error)
	Delete(ctx context.Context, id int64) error
	GetEnrolledSubjects(ctx context.Context, studentID int64) ([]*models.SubjectSummary, error)
}

// TeacherRepository is the persistence surface for teachers
type TeacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetAll(ctx context.Context) ([]*models.Teacher, error)
	Update(ctx context.Context, teacher *models.Teacher) (bool, error)
	Delete(ctx context.Context, id int64) error
	GetTaughtSubjects(ctx context.Context, teacherID int64) ([]*models.SubjectSummary, error)
}

// SubjectRepository is the persistence surface for subjects
type SubjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	GetAll(ctx context.Context) ([]*models.Subject, error)
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	ExistsByTeacher(ctx context.Context, teacherID int64) (bool, error)
	Update(ctx context.Context, subject *models.Subject) (bool, error)
	AssignTeacher(ctx context.Context, subjectID, teacherID int64) error
	Delete(ctx context.Context, id int64) error
	GetEnrolledStudents(ctx context.Context, subjectID int64) ([]*models.StudentSummary, error)
}

// EnrollmentRepository is the persistence surface for enrollments
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByStudentAndSubject(ctx context.Context, studentID, subjectID int64) (*models.Enrollment, error)
	CountByStudent(ctx context.Context, studentID int64) (int64, error)
	CountBySubject(ctx context.Context, subjectID int64) (int64, error)
}

var (
	_ StudentRepository    = (*repositories.StudentRepository)(nil)
	_ TeacherRepository    = (*repositories.TeacherRepository)(nil)
	_ SubjectRepository    = (*repositories.SubjectRepository)(nil)
	_ EnrollmentRepository = (*repositories.EnrollmentRepository)(nil)
)
