// Package seed creates the default directory data a fresh install
// starts with.
package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appModels "github.com/feims/feims/internal/app/models"
	appRepos "github.com/feims/feims/internal/app/repositories"
	"github.com/feims/feims/internal/db"
	"github.com/feims/feims/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

// CreateDefaultData creates the default departments if they don't
// exist. Reruns are no-ops; individual failures are collected so the
// rest of the seed still runs.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	departmentRepo := appRepos.NewDepartmentRepository(database)

	lgr.Info().Msg("checking/creating default departments")
	var finalErr error

	defaults := []*appModels.Department{
		{Code: "CSE", Name: "Computer Science and Engineering", Description: strPtr("Software, systems and theory of computation")},
		{Code: "EEE", Name: "Electrical and Electronic Engineering", Description: strPtr("Circuits, power and signal processing")},
		{Code: "MAT", Name: "Mathematics", Description: strPtr("Pure and applied mathematics")},
		{Code: "PHY", Name: "Physics", Description: strPtr("Experimental and theoretical physics")},
	}

	for _, department := range defaults {
		err := departmentRepo.Create(ctx, department)
		if err != nil && !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			lgr.Error().Err(err).Str("code", department.Code).Msg("error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
