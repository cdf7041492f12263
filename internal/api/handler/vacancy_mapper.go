package handler

import (
	"time"

	"github.com/jobs4devs/vacancy-api/internal/core/domain"
)

// toVacancy maps a write payload onto the domain entity. An omitted isOpen
// defaults to true; an omitted createdAt is left zero for the service to fill.
func toVacancy(req vacancyRequest) domain.Vacancy {
	isOpen := true
	if req.IsOpen != nil {
		isOpen = *req.IsOpen
	}
	var createdAt time.Time
	if req.CreatedAt != nil {
		createdAt = req.CreatedAt.UTC()
	}
	return domain.Vacancy{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		IsOpen:      isOpen,
		MinSalary:   req.MinSalary,
		MaxSalary:   req.MaxSalary,
		CreatedAt:   createdAt,
	}
}

func toVacancyResponse(v domain.Vacancy) vacancyResponse {
	return vacancyResponse{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Company:     v.Company,
		IsOpen:      v.IsOpen,
		MinSalary:   v.MinSalary,
		MaxSalary:   v.MaxSalary,
		CreatedAt:   v.CreatedAt.UTC(),
	}
}

func toVacancyListResponse(items []domain.Vacancy) []vacancyResponse {
	out := make([]vacancyResponse, len(items))
	for i, v := range items {
		out[i] = toVacancyResponse(v)
	}
	return out
}
