package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"agenda_facil/internal/adapter/persistence/repository"
	"agenda_facil/internal/infrastructure/security"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t     *testing.T
	r     *gin.Engine
	token string
}

func (c *apiClient) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)
	return w
}

func (c *apiClient) create(path string, body any) string {
	c.t.Helper()
	w := c.do(http.MethodPost, path, body)
	require.Equal(c.t, http.StatusCreated, w.Code, w.Body.String())
	var out struct {
		ID string `json:"id"`
	}
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &out))
	return out.ID
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("APP_TIMEZONE", "UTC")

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	tokens, err := security.NewJWTIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	getRoutes(r, repository.NewRedisRepositories(rdb), tokens)
	return &apiClient{t: t, r: r}
}

func TestRoutes_PublicAndProtected(t *testing.T) {
	api := newTestAPI(t)

	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/v1/ping", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/v1/clients", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/v1/auth/me", nil).Code)
}

func TestRoutes_BookingFlow(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/v1/auth/register", map[string]string{"name": "Recepção", "email": "Recepcao@Example.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = api.do(http.MethodPost, "/v1/auth/register", map[string]string{"email": "recepcao@example.com", "password": "secret1"})
	require.Equal(t, http.StatusConflict, w.Code)

	w = api.do(http.MethodPost, "/v1/auth/login", map[string]string{"email": "recepcao@example.com", "password": "wrong-pass"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	w = api.do(http.MethodPost, "/v1/auth/login", map[string]string{"email": "recepcao@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var session struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	api.token = session.AccessToken

	w = api.do(http.MethodGet, "/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "recepcao@example.com")

	clientID := api.create("/v1/clients", map[string]string{"name": "Ana", "phone": "(11) 98765-4321", "email": "ana@example.com"})
	professionalID := api.create("/v1/professionals", map[string]string{"name": "Bia", "specialty": "Cabelo"})
	serviceID := api.create("/v1/services", map[string]any{"name": "Corte", "duration": "30 min", "price": 50.0})

	w = api.do(http.MethodGet, "/v1/clients?field=phone&q=98765", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "+55 11 98765-4321")

	appointmentID := api.create("/v1/appointments", map[string]string{
		"title": "Corte", "date": "2024-03-10", "time": "14:30",
		"client_id": clientID, "professional_id": professionalID, "service_id": serviceID,
	})
	w = api.do(http.MethodPost, "/v1/appointments", map[string]string{
		"title": "Corte", "date": "2024-03-11", "time": "10:00",
		"client_id": "missing", "professional_id": professionalID, "service_id": serviceID,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = api.do(http.MethodPatch, "/v1/appointments/"+appointmentID+"/status", map[string]string{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodGet, "/v1/appointments?field=professional&q=bia", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"client_name":"Ana"`)

	w = api.do(http.MethodGet, "/v1/calendar/events?from=2024-03-01&to=2024-04-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cal struct {
		Events []struct {
			Title    string    `json:"title"`
			Start    time.Time `json:"start"`
			ColorHex string    `json:"color_hex"`
		} `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cal))
	require.Len(t, cal.Events, 1)
	assert.Equal(t, "Corte — Ana atendido por Bia — Serviço: Corte às 14:30", cal.Events[0].Title)
	assert.Equal(t, time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC), cal.Events[0].Start.UTC())
	assert.Equal(t, "#3b82f6", cal.Events[0].ColorHex)

	w = api.do(http.MethodGet, "/v1/calendar/events.ics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "BEGIN:VEVENT"))

	w = api.do(http.MethodGet, "/v1/dashboard/monthly?month=2024-03", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var report struct {
		Appointments int     `json:"appointments"`
		TotalRevenue float64 `json:"total_revenue"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 1, report.Appointments)
	assert.Equal(t, 50.0, report.TotalRevenue)

	w = api.do(http.MethodDelete, "/v1/services/"+serviceID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = api.do(http.MethodGet, "/v1/appointments/"+appointmentID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"service_price":null`)
}
