package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jobs4devs/vacancy-api/internal/core/ports"
)

// VacancyHandler handles HTTP requests for vacancy operations.
type VacancyHandler struct {
	service ports.VacancyService
}

func NewVacancyHandler(service ports.VacancyService) *VacancyHandler {
	return &VacancyHandler{service: service}
}

// List handles GET /vacancy. Public: listing never requires a token.
//
// @Summary      List all vacancies
// @Tags         vacancies
// @Produce      json
// @Success      200  {array}  vacancyResponse
// @Router       /vacancy [get]
func (h *VacancyHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVacancyListResponse(items))
}

// Get handles GET /vacancy/:id.
//
// @Summary      Get a vacancy by id
// @Tags         vacancies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Vacancy id (UUID)"
// @Success      200  {object}  vacancyResponse
// @Failure      404
// @Router       /vacancy/{id} [get]
func (h *VacancyHandler) Get(c echo.Context) error {
	id, err := vacancyID(c)
	if err != nil {
		return err
	}

	v, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVacancyResponse(*v))
}

// Create handles POST /vacancy.
//
// @Summary      Create a vacancy
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      vacancyRequest  true  "Vacancy details (id optional)"
// @Success      201   {object}  vacancyResponse
// @Failure      400   {object}  errorResponse
// @Router       /vacancy [post]
func (h *VacancyHandler) Create(c echo.Context) error {
	var req vacancyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), toVacancy(req))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/vacancy/"+created.ID)
	return c.JSON(http.StatusCreated, toVacancyResponse(*created))
}

// Update handles PUT /vacancy/:id — a full-record replacement, not a patch.
// The existence check runs before payload validation, matching the documented
// failure order (404 wins over 400 for a missing record).
//
// @Summary      Replace a vacancy
// @Tags         vacancies
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string          true  "Vacancy id (UUID)"
// @Param        body  body  vacancyRequest  true  "Full vacancy record"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      404
// @Router       /vacancy/{id} [put]
func (h *VacancyHandler) Update(c echo.Context) error {
	id, err := vacancyID(c)
	if err != nil {
		return err
	}

	var req vacancyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	if _, err := h.service.Get(c.Request().Context(), id); err != nil {
		return err
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	v := toVacancy(req)
	if v.ID == "" {
		v.ID = id
	}
	if err := h.service.Replace(c.Request().Context(), v); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /vacancy/:id. The route additionally requires the
// DeleteVacancy claim, enforced by middleware before this body runs.
//
// @Summary      Delete a vacancy
// @Tags         vacancies
// @Security     BearerAuth
// @Param        id  path  string  true  "Vacancy id (UUID)"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404
// @Router       /vacancy/{id} [delete]
func (h *VacancyHandler) Delete(c echo.Context) error {
	id, err := vacancyID(c)
	if err != nil {
		return err
	}

	if _, err := h.service.Get(c.Request().Context(), id); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// vacancyID parses and checks the :id path parameter.
func vacancyID(c echo.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid vacancy id")
	}
	return id, nil
}
