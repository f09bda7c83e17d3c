package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"hero-lab/domain"
	"hero-lab/errors"
	"hero-lab/mocks"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordedRequest struct {
	Method      string
	Path        string
	ContentType string
	RequestID   string
	Body        string
}

// newHeroServer answers every request with status and body, and records what it received.
func newHeroServer(t *testing.T, status int, body string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var recorded []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ := io.ReadAll(r.Body)
		recorded = append(recorded, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			RequestID:   r.Header.Get(RequestIDHeader),
			Body:        string(payload),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server, &recorded
}

func newRepository(server *httptest.Server) HeroRepository {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHeroRepository(server.Client(), log, server.URL+"/api/")
}

func TestHeroRepository_List(t *testing.T) {
	t.Run("should fetch the collection", func(t *testing.T) {
		req := require.New(t)
		server, recorded := newHeroServer(t, http.StatusOK, `[{"id":11,"name":"Storm"},{"id":12,"name":"Rogue"}]`)

		heroes, err := newRepository(server).List(context.Background())

		req.NoError(err)
		req.Equal([]domain.Hero{{ID: 11, Name: "Storm"}, {ID: 12, Name: "Rogue"}}, heroes)
		req.Len(*recorded, 1)
		req.Equal(http.MethodGet, (*recorded)[0].Method)
		req.Equal("/api/heroes", (*recorded)[0].Path)
		req.Empty((*recorded)[0].ContentType)
	})

	t.Run("should return an empty slice for a null body", func(t *testing.T) {
		req := require.New(t)
		server, _ := newHeroServer(t, http.StatusOK, `null`)

		heroes, err := newRepository(server).List(context.Background())

		req.NoError(err)
		req.NotNil(heroes)
		req.Empty(heroes)
	})

	t.Run("should fail on a malformed body", func(t *testing.T) {
		req := require.New(t)
		server, _ := newHeroServer(t, http.StatusOK, `{"heroes":`)

		_, err := newRepository(server).List(context.Background())

		req.ErrorIs(err, errors.ErrOperationFailed)
	})
}

func TestHeroRepository_Get(t *testing.T) {
	t.Run("should fetch a hero by id", func(t *testing.T) {
		req := require.New(t)
		server, recorded := newHeroServer(t, http.StatusOK, `{"id":42,"name":"Cyclops"}`)

		hero, err := newRepository(server).Get(context.Background(), 42)

		req.NoError(err)
		req.Equal(domain.Hero{ID: 42, Name: "Cyclops"}, hero)
		req.Equal("/api/heroes/42", (*recorded)[0].Path)
	})

	t.Run("should fail with the status on 404", func(t *testing.T) {
		req := require.New(t)
		server, _ := newHeroServer(t, http.StatusNotFound, `{"error":"not found"}`)

		_, err := newRepository(server).Get(context.Background(), 42)

		req.ErrorIs(err, errors.ErrOperationFailed)
		req.ErrorIs(err, errors.ErrUnexpectedStatus)
		req.Contains(err.Error(), "404 Not Found")
	})

	t.Run("should fail on an empty body", func(t *testing.T) {
		req := require.New(t)
		server, _ := newHeroServer(t, http.StatusOK, ``)

		_, err := newRepository(server).Get(context.Background(), 42)

		req.ErrorIs(err, errors.ErrOperationFailed)
	})

	t.Run("should fail when the server is unreachable", func(t *testing.T) {
		req := require.New(t)
		server, _ := newHeroServer(t, http.StatusOK, `{}`)
		repository := newRepository(server)
		server.Close()

		_, err := repository.Get(context.Background(), 1)

		req.ErrorIs(err, errors.ErrOperationFailed)
	})
}

func TestHeroRepository_Update(t *testing.T) {
	req := require.New(t)
	server, recorded := newHeroServer(t, http.StatusNoContent, ``)

	ack, err := newRepository(server).Update(context.Background(), domain.Hero{ID: 7, Name: "Beast"})

	req.NoError(err)
	req.Equal(http.StatusNoContent, ack.Status)
	req.Empty(ack.Body)
	got := (*recorded)[0]
	req.Equal(http.MethodPut, got.Method)
	req.Equal("/api/heroes", got.Path)
	req.Equal("application/json", got.ContentType)
	req.JSONEq(`{"id":7,"name":"Beast"}`, got.Body)
}

func TestHeroRepository_Add(t *testing.T) {
	req := require.New(t)
	server, recorded := newHeroServer(t, http.StatusCreated, `{"id":99,"name":"Wolverine"}`)

	created, err := newRepository(server).Add(context.Background(), domain.Hero{Name: "Wolverine"})

	req.NoError(err)
	req.Equal(domain.Hero{ID: 99, Name: "Wolverine"}, created)
	got := (*recorded)[0]
	req.Equal(http.MethodPost, got.Method)
	req.Equal("/api/heroes", got.Path)
	req.Equal("application/json", got.ContentType)

	var sent map[string]any
	req.NoError(json.Unmarshal([]byte(got.Body), &sent))
	req.NotContains(sent, "id")
}

func TestHeroRepository_Delete(t *testing.T) {
	t.Run("should return the echoed hero", func(t *testing.T) {
		req := require.New(t)
		server, recorded := newHeroServer(t, http.StatusOK, `{"id":5,"name":"X"}`)

		deleted, err := newRepository(server).Delete(context.Background(), 5)

		req.NoError(err)
		req.Equal(domain.Hero{ID: 5, Name: "X"}, deleted)
		req.Equal(http.MethodDelete, (*recorded)[0].Method)
		req.Equal("/api/heroes/5", (*recorded)[0].Path)
	})

	t.Run("should keep the id when the server answers without body", func(t *testing.T) {
		req := require.New(t)
		server, _ := newHeroServer(t, http.StatusNoContent, ``)

		deleted, err := newRepository(server).Delete(context.Background(), 5)

		req.NoError(err)
		req.Equal(domain.Hero{ID: 5}, deleted)
	})
}

func TestHeroRepository_RequestID(t *testing.T) {
	req := require.New(t)
	server, recorded := newHeroServer(t, http.StatusOK, `[]`)
	id := uuid.New()

	_, err := newRepository(server).List(WithRequestID(context.Background(), id))

	req.NoError(err)
	req.Equal(id.String(), (*recorded)[0].RequestID)
	req.Equal(uuid.Nil, RequestID(context.Background()))
}

func TestHeroRepository_TransportError(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	client := mocks.NewMockHTTPClient(ctrl)
	client.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(r *http.Request) (*http.Response, error) {
			req.Equal("http://heroes.local/api/heroes/3", r.URL.String())
			return nil, fmt.Errorf("dial tcp: connection refused")
		}).
		Times(1)
	repository := NewHeroRepository(client, slog.New(slog.NewTextHandler(io.Discard, nil)), "http://heroes.local/api")

	_, err := repository.Delete(context.Background(), 3)

	req.ErrorIs(err, errors.ErrOperationFailed)
	req.Contains(err.Error(), "connection refused")
}
