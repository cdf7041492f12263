package ports

import (
	"context"

	"github.com/jobs4devs/vacancy-api/internal/core/domain"
)

// VacancyService defines the use-case operations for vacancies.
type VacancyService interface {
	// Create stores a new vacancy, generating an id when none is supplied,
	// and returns the record as persisted.
	Create(ctx context.Context, v domain.Vacancy) (*domain.Vacancy, error)
	List(ctx context.Context) ([]domain.Vacancy, error)
	Get(ctx context.Context, id string) (*domain.Vacancy, error)
	// Replace performs a full-record overwrite of the vacancy identified by
	// v.ID. Not a partial patch: every field takes the supplied value.
	Replace(ctx context.Context, v domain.Vacancy) error
	Delete(ctx context.Context, id string) error
}
