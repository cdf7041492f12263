package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jobs4devs/vacancy-api/internal/core/domain"
)

type stubVacancyService struct {
	createFn  func(ctx context.Context, v domain.Vacancy) (*domain.Vacancy, error)
	listFn    func(ctx context.Context) ([]domain.Vacancy, error)
	getFn     func(ctx context.Context, id string) (*domain.Vacancy, error)
	replaceFn func(ctx context.Context, v domain.Vacancy) error
	deleteFn  func(ctx context.Context, id string) error
}

func (s *stubVacancyService) Create(ctx context.Context, v domain.Vacancy) (*domain.Vacancy, error) {
	return s.createFn(ctx, v)
}
func (s *stubVacancyService) List(ctx context.Context) ([]domain.Vacancy, error) {
	return s.listFn(ctx)
}
func (s *stubVacancyService) Get(ctx context.Context, id string) (*domain.Vacancy, error) {
	return s.getFn(ctx, id)
}
func (s *stubVacancyService) Replace(ctx context.Context, v domain.Vacancy) error {
	return s.replaceFn(ctx, v)
}
func (s *stubVacancyService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

const testID = "6f1d2c3b-0000-4000-8000-000000000001"

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestVacancyHandler_List(t *testing.T) {
	stub := &stubVacancyService{
		listFn: func(ctx context.Context) ([]domain.Vacancy, error) {
			return []domain.Vacancy{
				{ID: testID, Title: "Engineer", Description: "Build things", Company: "Acme", IsOpen: true},
			}, nil
		},
	}
	h := NewVacancyHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/vacancy", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(items) != 1 || items[0]["title"] != "Engineer" {
		t.Fatalf("unexpected payload: %+v", items)
	}
}

func TestVacancyHandler_Get_NotFound(t *testing.T) {
	stub := &stubVacancyService{
		getFn: func(ctx context.Context, id string) (*domain.Vacancy, error) {
			return nil, domain.ErrVacancyNotFound
		},
	}
	h := NewVacancyHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/vacancy/"+testID, "")
	c.SetParamNames("id")
	c.SetParamValues(testID)

	if err := h.Get(c); !errors.Is(err, domain.ErrVacancyNotFound) {
		t.Fatalf("expected ErrVacancyNotFound, got %v", err)
	}
}

func TestVacancyHandler_Get_InvalidID(t *testing.T) {
	stub := &stubVacancyService{
		getFn: func(ctx context.Context, id string) (*domain.Vacancy, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewVacancyHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/vacancy/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestVacancyHandler_Create_Success(t *testing.T) {
	stub := &stubVacancyService{
		createFn: func(ctx context.Context, v domain.Vacancy) (*domain.Vacancy, error) {
			if !v.IsOpen {
				t.Fatalf("omitted isOpen must default to true")
			}
			v.ID = testID
			return &v, nil
		},
	}
	h := NewVacancyHandler(stub)

	body := `{"title":"Engineer","description":"Build things","company":"Acme","minSalary":50000,"maxSalary":90000}`
	c, rec := newTestContext(t, http.MethodPost, "/vacancy", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/vacancy/"+testID {
		t.Fatalf("unexpected Location header: %q", loc)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["isOpen"] != true {
		t.Fatalf("expected isOpen true in response, got %v", resp["isOpen"])
	}
	if resp["minSalary"] != float64(50000) || resp["maxSalary"] != float64(90000) {
		t.Fatalf("unexpected salaries: %v / %v", resp["minSalary"], resp["maxSalary"])
	}
}

func TestVacancyHandler_Create_ValidationFailure(t *testing.T) {
	stub := &stubVacancyService{
		createFn: func(ctx context.Context, v domain.Vacancy) (*domain.Vacancy, error) {
			t.Fatalf("store must not be reached on invalid payload")
			return nil, nil
		},
	}
	h := NewVacancyHandler(stub)

	body := `{"description":"Build things","company":"Acme"}`
	c, _ := newTestContext(t, http.MethodPost, "/vacancy", body)

	err := h.Create(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["title"]; !ok {
		t.Fatalf("expected violation on title, got %v", ve.Fields)
	}
}

func TestVacancyHandler_Update_NotFoundBeforeValidation(t *testing.T) {
	stub := &stubVacancyService{
		getFn: func(ctx context.Context, id string) (*domain.Vacancy, error) {
			return nil, domain.ErrVacancyNotFound
		},
		replaceFn: func(ctx context.Context, v domain.Vacancy) error {
			t.Fatalf("replace must not be reached")
			return nil
		},
	}
	h := NewVacancyHandler(stub)

	// The payload is invalid too; the missing record must win.
	c, _ := newTestContext(t, http.MethodPut, "/vacancy/"+testID, `{"company":"Acme"}`)
	c.SetParamNames("id")
	c.SetParamValues(testID)

	if err := h.Update(c); !errors.Is(err, domain.ErrVacancyNotFound) {
		t.Fatalf("expected ErrVacancyNotFound, got %v", err)
	}
}

func TestVacancyHandler_Update_Success(t *testing.T) {
	var replaced domain.Vacancy
	stub := &stubVacancyService{
		getFn: func(ctx context.Context, id string) (*domain.Vacancy, error) {
			return &domain.Vacancy{ID: id}, nil
		},
		replaceFn: func(ctx context.Context, v domain.Vacancy) error {
			replaced = v
			return nil
		},
	}
	h := NewVacancyHandler(stub)

	body := `{"title":"Senior Engineer","description":"Build bigger things","company":"Acme","isOpen":false,"minSalary":80000,"maxSalary":120000}`
	c, rec := newTestContext(t, http.MethodPut, "/vacancy/"+testID, body)
	c.SetParamNames("id")
	c.SetParamValues(testID)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if replaced.ID != testID {
		t.Fatalf("expected replace keyed by path id, got %q", replaced.ID)
	}
	if replaced.IsOpen {
		t.Fatalf("expected explicit isOpen false to be preserved")
	}
}

func TestVacancyHandler_Delete_Success(t *testing.T) {
	deleted := ""
	stub := &stubVacancyService{
		getFn: func(ctx context.Context, id string) (*domain.Vacancy, error) {
			return &domain.Vacancy{ID: id}, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewVacancyHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/vacancy/"+testID, "")
	c.SetParamNames("id")
	c.SetParamValues(testID)

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != testID {
		t.Fatalf("expected delete of %s, got %q", testID, deleted)
	}
}

func TestVacancyHandler_Delete_NotFound(t *testing.T) {
	stub := &stubVacancyService{
		getFn: func(ctx context.Context, id string) (*domain.Vacancy, error) {
			return nil, domain.ErrVacancyNotFound
		},
		deleteFn: func(ctx context.Context, id string) error {
			t.Fatalf("delete must not be reached")
			return nil
		},
	}
	h := NewVacancyHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/vacancy/"+testID, "")
	c.SetParamNames("id")
	c.SetParamValues(testID)

	if err := h.Delete(c); !errors.Is(err, domain.ErrVacancyNotFound) {
		t.Fatalf("expected ErrVacancyNotFound, got %v", err)
	}
}
