//go:generate go run go.uber.org/mock/mockgen -source=hero.go -destination=../mocks/mock_hero_repository.go -package=mocks
package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hero-lab/domain"
	"hero-lab/errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	heroesPath      = "/heroes"
	RequestIDHeader = "X-Request-ID"
)

// HTTPClient abstracts the transport so tests can inject their own.
// *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type IHeroRepository interface {
	List(ctx context.Context) ([]domain.Hero, error)
	Get(ctx context.Context, id int) (domain.Hero, error)
	Update(ctx context.Context, hero domain.Hero) (domain.Ack, error)
	Add(ctx context.Context, hero domain.Hero) (domain.Hero, error)
	Delete(ctx context.Context, id int) (domain.Hero, error)
}

// HeroRepository talks to the heroes REST endpoint. Each call issues exactly one request,
// every failure is returned wrapped in errors.ErrOperationFailed.
type HeroRepository struct {
	client  HTTPClient
	log     *slog.Logger
	heroURL string
}

func NewHeroRepository(client HTTPClient, log *slog.Logger, baseURL string) HeroRepository {
	return HeroRepository{
		client:  client,
		log:     log,
		heroURL: strings.TrimRight(baseURL, "/") + heroesPath,
	}
}

type requestIDKey struct{}

// WithRequestID attaches the id sent as X-Request-ID by the next call made with ctx.
func WithRequestID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id attached to ctx, or uuid.Nil.
func RequestID(ctx context.Context) uuid.UUID {
	id, ok := ctx.Value(requestIDKey{}).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

func (r HeroRepository) List(ctx context.Context) ([]domain.Hero, error) {
	resp, err := r.do(ctx, http.MethodGet, r.heroURL, nil)
	if err != nil {
		return nil, err
	}
	var heroes []domain.Hero
	if err = decode(resp.body, &heroes); err != nil {
		return nil, err
	}
	if heroes == nil {
		heroes = []domain.Hero{}
	}
	return heroes, nil
}

func (r HeroRepository) Get(ctx context.Context, id int) (domain.Hero, error) {
	resp, err := r.do(ctx, http.MethodGet, r.itemURL(id), nil)
	if err != nil {
		return domain.Hero{}, err
	}
	var hero domain.Hero
	if err = decode(resp.body, &hero); err != nil {
		return domain.Hero{}, err
	}
	return hero, nil
}

// Update replaces the whole record. The collection URL is used, the id travels in the body.
func (r HeroRepository) Update(ctx context.Context, hero domain.Hero) (domain.Ack, error) {
	resp, err := r.do(ctx, http.MethodPut, r.heroURL, hero)
	if err != nil {
		return domain.Ack{}, err
	}
	return domain.Ack{Status: resp.status, Body: resp.body}, nil
}

func (r HeroRepository) Add(ctx context.Context, hero domain.Hero) (domain.Hero, error) {
	resp, err := r.do(ctx, http.MethodPost, r.heroURL, hero)
	if err != nil {
		return domain.Hero{}, err
	}
	var created domain.Hero
	if err = decode(resp.body, &created); err != nil {
		return domain.Hero{}, err
	}
	return created, nil
}

// Delete returns the record echoed by the server. A server answering
// without a body yields a hero holding only the id.
func (r HeroRepository) Delete(ctx context.Context, id int) (domain.Hero, error) {
	resp, err := r.do(ctx, http.MethodDelete, r.itemURL(id), nil)
	if err != nil {
		return domain.Hero{}, err
	}
	deleted := domain.Hero{ID: id}
	if len(bytes.TrimSpace(resp.body)) == 0 {
		return deleted, nil
	}
	if err = decode(resp.body, &deleted); err != nil {
		return domain.Hero{}, err
	}
	return deleted, nil
}

func (r HeroRepository) itemURL(id int) string {
	return fmt.Sprintf("%s/%d", r.heroURL, id)
}

type response struct {
	status int
	body   []byte
}

func (r HeroRepository) do(ctx context.Context, method, url string, body any) (response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return response{}, fmt.Errorf("%w: encoding body: %w", errors.ErrOperationFailed, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return response{}, fmt.Errorf("%w: %w", errors.ErrOperationFailed, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if id := RequestID(ctx); id != uuid.Nil {
		req.Header.Set(RequestIDHeader, id.String())
	}

	r.log.Debug("Sending request", "method", method, "url", url, "request_id", RequestID(ctx))
	resp, err := r.client.Do(req)
	if err != nil {
		return response{}, fmt.Errorf("%w: %w", errors.ErrOperationFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, fmt.Errorf("%w: reading body: %w", errors.ErrOperationFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return response{}, fmt.Errorf("%w: %w: %d %s for %s %s",
			errors.ErrOperationFailed, errors.ErrUnexpectedStatus,
			resp.StatusCode, http.StatusText(resp.StatusCode), method, url)
	}
	return response{status: resp.StatusCode, body: raw}, nil
}

func decode(raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decoding body: %w", errors.ErrOperationFailed, err)
	}
	return nil
}
