package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"locamaq-backend/internal/domain"
	"locamaq-backend/internal/security"
	"locamaq-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clientSvcStub struct {
	clients map[int32]domain.Client
}

func (s *clientSvcStub) CreateClient(ctx context.Context, c *domain.Client) error {
	if !domain.ValidClientTaxID(c) {
		return service.ErrInvalidTaxID
	}
	c.ID = int32(len(s.clients) + 1)
	s.clients[c.ID] = *c
	return nil
}

func (s *clientSvcStub) GetClient(ctx context.Context, id int32) (*domain.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return nil, errNotFound
	}
	return &c, nil
}

func (s *clientSvcStub) UpdateClient(ctx context.Context, c *domain.Client) error { return nil }
func (s *clientSvcStub) DeleteClient(ctx context.Context, id int32) error        { return nil }

func (s *clientSvcStub) ListClients(ctx context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c)
	}
	return out, nil
}

var errNotFound = assert.AnError

func testRouter(t *testing.T) (http.Handler, string) {
	t.Helper()
	tokens := security.NewTokenManager("router-test-secret", 1)
	token, err := tokens.GenerateAccessToken(1, "ana@locamaq.com.br")
	require.NoError(t, err)

	router := NewRouter(RouterDeps{
		Tokens:    tokens,
		ClientSvc: &clientSvcStub{clients: map[int32]domain.Client{}},
	})
	return router, token
}

func TestRouter_Auth(t *testing.T) {
	router, token := testRouter(t)

	t.Run("RejectsMissingToken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/clientes", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("RejectsGarbageToken", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/clientes", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("AcceptsValidToken", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/clientes", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("HealthIsPublic", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestClientHandler_Create(t *testing.T) {
	router, token := testRouter(t)

	post := func(t *testing.T, payload domain.Client) *httptest.ResponseRecorder {
		t.Helper()
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req := httptest.NewRequest("POST", "/api/v1/clientes", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Success", func(t *testing.T) {
		rec := post(t, domain.Client{
			Name:     "Ana Costa",
			TaxID:    "52998224725",
			Address:  "Rua A, 1",
			District: "Centro",
			City:     "Campinas",
			State:    "SP",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		var created domain.Client
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Positive(t, created.ID)
	})

	t.Run("RejectsBadChecksum", func(t *testing.T) {
		rec := post(t, domain.Client{
			Name:  "Fulano",
			TaxID: "12345678900",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
