package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/academics/internal/app/models"
	appRepos "github.com/yigit/academics/internal/app/repositories"
)

// Transactor runs a function inside a database transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

const (
	demoSubjectName = "Mathematics I"
	demoTeacherName = "Ana"
)

// CreateDemoData inserts one teacher and one subject taught by that teacher.
// It does nothing when the demo subject already exists.
func CreateDemoData(ctx context.Context, db Transactor, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating demo data (teacher/subject)...")

	created := false
	err := db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repos := appRepos.NewRepositories(tx)

		exists, err := repos.SubjectRepository.NameExists(ctx, demoSubjectName, 0)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		specialty := "Mathematics"
		teacher := &appModels.Teacher{Name: demoTeacherName, Surname: "Ruiz", Specialty: &specialty}
		if err := repos.TeacherRepository.Create(ctx, teacher); err != nil {
			return fmt.Errorf("creating demo teacher: %w", err)
		}

		description := "Introductory calculus and linear algebra"
		subject := &appModels.Subject{Name: demoSubjectName, Description: &description, TeacherID: &teacher.ID}
		if err := repos.SubjectRepository.Create(ctx, subject); err != nil {
			return fmt.Errorf("creating demo subject: %w", err)
		}

		created = true
		return nil
	})
	if err != nil {
		return err
	}

	if created {
		lgr.Info().Str("subject", demoSubjectName).Msg("Demo data created")
	} else {
		lgr.Info().Msg("Demo data already present, skipping")
	}
	return nil
}
