package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jobs4devs/vacancy-api/internal/api/metrics"
	"github.com/jobs4devs/vacancy-api/internal/core/domain"
	"github.com/jobs4devs/vacancy-api/internal/core/ports"
)

// VacancyService implements the vacancy use-cases over a repository. Every
// operation is a single store call; there is no caching layer in front.
type VacancyService struct {
	repo   ports.VacancyRepository
	logger zerolog.Logger
}

func NewVacancyService(repo ports.VacancyRepository, logger zerolog.Logger) *VacancyService {
	return &VacancyService{repo: repo, logger: logger}
}

// Create stores a new vacancy. An id is generated when the caller did not
// supply one; CreatedAt defaults to the creation time.
func (s *VacancyService) Create(ctx context.Context, v domain.Vacancy) (*domain.Vacancy, error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}

	count, err := s.repo.Insert(ctx, &v)
	if err != nil {
		s.logger.Error().Err(err).Str("vacancy_id", v.ID).Msg("failed to insert vacancy")
		return nil, err
	}
	if count == 0 {
		return nil, domain.ErrNothingSaved
	}

	metrics.VacanciesCreatedTotal.Inc()
	s.logger.Info().Str("vacancy_id", v.ID).Str("company", v.Company).Msg("vacancy created")
	return &v, nil
}

func (s *VacancyService) List(ctx context.Context) ([]domain.Vacancy, error) {
	return s.repo.FindAll(ctx)
}

func (s *VacancyService) Get(ctx context.Context, id string) (*domain.Vacancy, error) {
	return s.repo.FindByID(ctx, id)
}

// Replace overwrites every field of an existing vacancy. The caller is
// expected to have resolved existence already (the not-found check precedes
// validation at the transport layer); a zero matched count here means the
// record vanished in between and is reported as a generic update failure.
func (s *VacancyService) Replace(ctx context.Context, v domain.Vacancy) error {
	count, err := s.repo.Replace(ctx, &v)
	if err != nil {
		s.logger.Error().Err(err).Str("vacancy_id", v.ID).Msg("failed to replace vacancy")
		return err
	}
	if count == 0 {
		return domain.ErrNothingUpdated
	}

	metrics.VacanciesUpdatedTotal.Inc()
	s.logger.Info().Str("vacancy_id", v.ID).Msg("vacancy replaced")
	return nil
}

func (s *VacancyService) Delete(ctx context.Context, id string) error {
	count, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("vacancy_id", id).Msg("failed to delete vacancy")
		return err
	}
	if count == 0 {
		return domain.ErrNothingRemoved
	}

	metrics.VacanciesDeletedTotal.Inc()
	s.logger.Info().Str("vacancy_id", id).Msg("vacancy deleted")
	return nil
}
