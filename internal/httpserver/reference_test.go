package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecommerce-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

type stubCountryRepo struct {
	countries []domain.Country
	byID      *domain.Country
	err       error
}

func (s *stubCountryRepo) List(_ context.Context) ([]domain.Country, error) {
	return s.countries, s.err
}

func (s *stubCountryRepo) GetByID(_ context.Context, _ int64) (*domain.Country, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byID, nil
}

type stubStateRepo struct {
	states   []domain.State
	lastCode string
	err      error
}

func (s *stubStateRepo) List(_ context.Context) ([]domain.State, error) {
	return s.states, s.err
}

func (s *stubStateRepo) ListByCountryCode(_ context.Context, code string) ([]domain.State, error) {
	s.lastCode = code
	return s.states, s.err
}

func TestListCountriesHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubCountryRepo{countries: []domain.Country{{ID: 1, Code: "US", Name: "United States"}}}
	router := gin.New()
	router.GET("/api/countries", listCountriesHandler(repo))

	req := httptest.NewRequest(http.MethodGet, "/api/countries", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"US"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestListCountriesHandler_EmptyIsArray(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/countries", listCountriesHandler(&stubCountryRepo{}))

	req := httptest.NewRequest(http.MethodGet, "/api/countries", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestGetCountryHandler_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/countries/:id", getCountryHandler(&stubCountryRepo{err: domain.ErrNotFound}))

	req := httptest.NewRequest(http.MethodGet, "/api/countries/99", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestGetCountryHandler_BadID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/countries/:id", getCountryHandler(&stubCountryRepo{}))

	req := httptest.NewRequest(http.MethodGet, "/api/countries/abc", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestListStatesHandler_FiltersByCountryCode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubStateRepo{states: []domain.State{{ID: 2, Name: "New York", CountryID: 1}}}
	router := gin.New()
	router.GET("/api/states", listStatesHandler(repo))

	req := httptest.NewRequest(http.MethodGet, "/api/states?countryCode=US", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if repo.lastCode != "US" {
		t.Fatalf("expected filter by US, got %q", repo.lastCode)
	}
	if !strings.Contains(rec.Body.String(), `"name":"New York"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
