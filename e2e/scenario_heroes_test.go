package e2e

import (
	"context"
	"hero-lab/domain"
	"hero-lab/services"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type testHeroesSuite struct {
	BaseHTTPSuite
}

func TestHeroesSuite(t *testing.T) {
	suite.Run(t, &testHeroesSuite{})
}

func (s *testHeroesSuite) TestHeroLifecycle() {
	name := "Hero-" + uuid.NewString()[:8]
	var created *domain.Hero

	s.Run("Step 1: Add a hero and receive its server id", func() {
		s.WithHeroService("Add hero", func(ctx context.Context, svc *services.HeroService, messages *services.MessageService) {
			created = svc.AddHero(ctx, domain.Hero{Name: name})
			s.Require().NotNil(created, "add failed: %v", messages.Messages())
			s.Require().Positive(created.ID)
			s.Require().Equal(name, created.Name)
			s.Require().Equal([]string{"HeroService: added hero with name " + name}, messages.Messages())
		})
	})

	s.Run("Step 2: Rename the hero and read it back", func() {
		s.Require().NotNil(created)
		s.WithHeroService("Update hero", func(ctx context.Context, svc *services.HeroService, messages *services.MessageService) {
			renamed := domain.Hero{ID: created.ID, Name: name + "-renamed"}
			s.Require().NotNil(svc.UpdateHero(ctx, renamed), "update failed: %v", messages.Messages())

			got := svc.GetHero(ctx, created.ID)
			s.Require().NotNil(got)
			s.Require().Equal(renamed, *got)
			s.Require().Equal(2, messages.Len())
		})
	})

	s.Run("Step 3: Delete the hero by record, then miss it", func() {
		s.Require().NotNil(created)
		s.WithHeroService("Delete hero", func(ctx context.Context, svc *services.HeroService, messages *services.MessageService) {
			s.Require().NotNil(svc.DeleteHero(ctx, domain.KeyFromHero(*created)))
			s.Require().Nil(svc.GetHero(ctx, created.ID))
			s.Require().Len(messages.Messages(), 2)
			s.Require().Contains(messages.Messages()[1], "failed")
		})
	})
}
