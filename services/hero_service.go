//go:generate go run go.uber.org/mock/mockgen -source=hero_service.go -destination=../mocks/mock_hero_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"hero-lab/contract"
	"hero-lab/domain"
	"hero-lab/repositories"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const messagePrefix = "HeroService: "

// IHeroService never returns an error: a failed call yields an empty or nil
// result so the UI always has something to render.
type IHeroService interface {
	GetHeroes(ctx context.Context) []domain.Hero
	GetHeroesOr(ctx context.Context, fallback []domain.Hero) []domain.Hero
	GetHero(ctx context.Context, id int) *domain.Hero
	UpdateHero(ctx context.Context, hero domain.Hero) *domain.Ack
	AddHero(ctx context.Context, hero domain.Hero) *domain.Hero
	DeleteHero(ctx context.Context, key domain.HeroKey) *domain.Hero
}

type HeroService struct {
	repository repositories.IHeroRepository
	messages   IMessageService
	sink       contract.DiagnosticSink
	log        *slog.Logger
}

func NewHeroService(
	repository repositories.IHeroRepository,
	messages IMessageService,
	sink contract.DiagnosticSink,
	log *slog.Logger,
) *HeroService {
	return &HeroService{
		repository: repository,
		messages:   messages,
		sink:       sink,
		log:        log,
	}
}

func (s *HeroService) GetHeroes(ctx context.Context) []domain.Hero {
	return s.GetHeroesOr(ctx, []domain.Hero{})
}

func (s *HeroService) GetHeroesOr(ctx context.Context, fallback []domain.Hero) []domain.Hero {
	return handle(ctx, s, "getHeroes", fallback,
		s.repository.List,
		func([]domain.Hero) string { return "fetched heroes" },
	)
}

func (s *HeroService) GetHero(ctx context.Context, id int) *domain.Hero {
	return handle[*domain.Hero](ctx, s, fmt.Sprintf("get hero id=%d", id), nil,
		func(ctx context.Context) (*domain.Hero, error) {
			hero, err := s.repository.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return lo.ToPtr(hero), nil
		},
		func(*domain.Hero) string { return fmt.Sprintf("fetched hero with id=%d", id) },
	)
}

func (s *HeroService) UpdateHero(ctx context.Context, hero domain.Hero) *domain.Ack {
	return handle[*domain.Ack](ctx, s, fmt.Sprintf("update hero id=%d", hero.ID), nil,
		func(ctx context.Context) (*domain.Ack, error) {
			if err := domain.ValidateExisting(hero); err != nil {
				return nil, err
			}
			ack, err := s.repository.Update(ctx, hero)
			if err != nil {
				return nil, err
			}
			return lo.ToPtr(ack), nil
		},
		func(*domain.Ack) string { return fmt.Sprintf("updated hero id=%d", hero.ID) },
	)
}

func (s *HeroService) AddHero(ctx context.Context, hero domain.Hero) *domain.Hero {
	return handle[*domain.Hero](ctx, s, "add hero", nil,
		func(ctx context.Context) (*domain.Hero, error) {
			if err := domain.ValidateNew(hero); err != nil {
				return nil, err
			}
			created, err := s.repository.Add(ctx, hero)
			if err != nil {
				return nil, err
			}
			return lo.ToPtr(created), nil
		},
		func(created *domain.Hero) string { return fmt.Sprintf("added hero with name %s", created.Name) },
	)
}

// DeleteHero resolves the key to an id before any request is built.
func (s *HeroService) DeleteHero(ctx context.Context, key domain.HeroKey) *domain.Hero {
	var id int
	return handle[*domain.Hero](ctx, s, "deleteHero", nil,
		func(ctx context.Context) (*domain.Hero, error) {
			var err error
			if id, err = key.ID(); err != nil {
				return nil, err
			}
			deleted, err := s.repository.Delete(ctx, id)
			if err != nil {
				return nil, err
			}
			return lo.ToPtr(deleted), nil
		},
		func(*domain.Hero) string { return fmt.Sprintf("deleted hero id=%d", id) },
	)
}

// handle runs a single call and contains its failure: the message log gets exactly one
// entry, the raw error goes to the diagnostic sink and the caller receives fallback.
func handle[T any](
	ctx context.Context,
	s *HeroService,
	operation string,
	fallback T,
	call func(ctx context.Context) (T, error),
	describe func(result T) string,
) T {
	requestID := uuid.New()
	ctx = repositories.WithRequestID(ctx, requestID)

	result, err := call(ctx)
	if err != nil {
		s.sink.Report(ctx, contract.Failure{
			Operation: operation,
			RequestID: requestID,
			Err:       err,
			At:        time.Now().UTC(),
		})
		s.addMessage(fmt.Sprintf("%s failed: %s", operation, err))
		return fallback
	}

	s.log.Debug("Operation succeeded", "operation", operation, "request_id", requestID)
	s.addMessage(describe(result))
	return result
}

func (s *HeroService) addMessage(message string) {
	s.messages.AddMessage(messagePrefix + message)
}
