package ports

import (
	"context"

	"github.com/jobs4devs/vacancy-api/internal/core/domain"
)

// VacancyRepository defines persistence operations for vacancies. Write
// operations return the number of records written so callers can distinguish
// "nothing happened" from a hard storage failure.
type VacancyRepository interface {
	// Insert stores a new vacancy. Returns 0 when the underlying constraint
	// (duplicate id) rejected the write without a transport error.
	Insert(ctx context.Context, v *domain.Vacancy) (int64, error)
	// FindAll returns every vacancy in storage order. No pagination.
	FindAll(ctx context.Context) ([]domain.Vacancy, error)
	// FindByID returns domain.ErrVacancyNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*domain.Vacancy, error)
	// Replace overwrites all fields of the record identified by v.ID.
	// Returns 0 when no record with that id exists.
	Replace(ctx context.Context, v *domain.Vacancy) (int64, error)
	// Delete removes the record. Returns 0 when it did not exist.
	Delete(ctx context.Context, id string) (int64, error)
}
