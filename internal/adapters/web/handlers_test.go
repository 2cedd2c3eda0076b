package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	web "warehouse-server/internal/adapters/web"
	"warehouse-server/internal/app"
	"warehouse-server/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubService is a scripted ApplicationService for handler tests.
type stubService struct {
	replenishResult *app.ReplenishResult

	catalogResult *app.CatalogResult
	catalogErr    error

	listResult *app.CenterListResult
	listErr    error

	centerResult *app.CenterResult
	centerErr    error

	addErr    error
	deleteErr error
}

func (s *stubService) Replenish(ctx context.Context, req app.ReplenishRequest) (*app.ReplenishResult, error) {
	return s.replenishResult, nil
}

func (s *stubService) AvailableByBrand(ctx context.Context) (*app.CatalogResult, error) {
	return s.catalogResult, s.catalogErr
}

func (s *stubService) ListCenters(ctx context.Context) (*app.CenterListResult, error) {
	return s.listResult, s.listErr
}

func (s *stubService) GetCenter(ctx context.Context, id int64) (*app.CenterResult, error) {
	return s.centerResult, s.centerErr
}

func (s *stubService) AddCenterItem(ctx context.Context, req app.AddCenterItemRequest) error {
	return s.addErr
}

func (s *stubService) DeleteCenterItem(ctx context.Context, centerID, itemID int64) error {
	return s.deleteErr
}

func doRequest(t *testing.T, svc app.ApplicationService, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := web.NewHandler(svc, "")
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestReplenishEndpoint_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		result core.ReplenishmentResult
		status int
	}{
		{"success", core.ReplenishmentResult{Succeeded: true, CenterID: 3, Quantity: 1}, http.StatusOK},
		{"invalid", core.ReplenishmentResult{Reason: core.ReasonInvalidInput}, http.StatusBadRequest},
		{"not available", core.ReplenishmentResult{Reason: core.ReasonNotAvailable}, http.StatusNotFound},
		{"search unavailable", core.ReplenishmentResult{Reason: core.ReasonServiceUnavailable}, http.StatusBadGateway},
		{"request failed", core.ReplenishmentResult{Reason: core.ReasonRequestFailed}, http.StatusBadGateway},
		{"inconsistent", core.ReplenishmentResult{Reason: core.ReasonInconsistent}, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubService{replenishResult: &app.ReplenishResult{ReplenishmentResult: tc.result}}
			rec := doRequest(t, svc, http.MethodPost, "/api/replenish", `{"brand":"Nike","name":"Air Max","quantity":1}`)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestReplenishEndpoint_MalformedBody(t *testing.T) {
	rec := doRequest(t, &stubService{}, http.MethodPost, "/api/replenish", `{"brand":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogEndpoint_UnavailableRendersEmpty(t *testing.T) {
	svc := &stubService{catalogErr: core.ErrServiceUnavailable}
	rec := doRequest(t, svc, http.MethodGet, "/api/catalog", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"brands": [], "items_by_brand": {}}`, rec.Body.String())
}

func TestCentersEndpoint_UnavailableRendersEmpty(t *testing.T) {
	svc := &stubService{listErr: core.ErrServiceUnavailable}
	rec := doRequest(t, svc, http.MethodGet, "/api/centers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"centers": []}`, rec.Body.String())
}

func TestGetCenterEndpoint_NotFoundVsUpstream(t *testing.T) {
	rec := doRequest(t, &stubService{centerErr: core.ErrCenterNotFound}, http.MethodGet, "/api/centers/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, &stubService{centerErr: core.ErrServiceUnavailable}, http.MethodGet, "/api/centers/9", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	rec = doRequest(t, &stubService{}, http.MethodGet, "/api/centers/not-a-number", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddCenterItemEndpoint(t *testing.T) {
	body := `{"name":"Air Max","brand":"Nike","category":"Shoes","price":"129.99","year":2022,"quantity":5}`

	rec := doRequest(t, &stubService{}, http.MethodPost, "/api/centers/3/items", body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, &stubService{addErr: app.ErrInvalidInput}, http.MethodPost, "/api/centers/3/items", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, &stubService{addErr: core.ErrServiceUnavailable}, http.MethodPost, "/api/centers/3/items", body)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestDeleteCenterItemEndpoint(t *testing.T) {
	rec := doRequest(t, &stubService{}, http.MethodDelete, "/api/centers/3/items/11", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, &stubService{deleteErr: core.ErrServiceUnavailable}, http.MethodDelete, "/api/centers/3/items/11", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHealthAndRequestID(t *testing.T) {
	rec := doRequest(t, &stubService{}, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
