package domain

import (
	"encoding/json"
	"hero-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeroKey_ID(t *testing.T) {
	t.Run("should resolve an id and a hero to the same id", func(t *testing.T) {
		req := require.New(t)

		fromID, err := KeyFromID(5).ID()
		req.NoError(err)
		fromHero, err := KeyFromHero(Hero{ID: 5, Name: "X"}).ID()
		req.NoError(err)

		req.Equal(5, fromID)
		req.Equal(fromID, fromHero)
	})

	t.Run("should fail fast when the hero has no id", func(t *testing.T) {
		req := require.New(t)

		_, err := KeyFromHero(Hero{Name: "Nameless"}).ID()

		req.ErrorIs(err, errors.ErrMissingHeroID)
	})
}

func TestHero_JSON(t *testing.T) {
	req := require.New(t)

	partial, err := json.Marshal(Hero{Name: "Wolverine"})
	req.NoError(err)
	req.JSONEq(`{"name":"Wolverine"}`, string(partial))

	var hero Hero
	req.NoError(json.Unmarshal([]byte(`{"id":99,"name":"Wolverine"}`), &hero))
	req.Equal(Hero{ID: 99, Name: "Wolverine"}, hero)
	req.True(hero.Is(Hero{ID: 99, Name: "Logan"}))
}

func TestValidate(t *testing.T) {
	t.Run("should accept a new hero without id", func(t *testing.T) {
		require.NoError(t, ValidateNew(Hero{Name: "Storm"}))
	})

	t.Run("should reject a blank name", func(t *testing.T) {
		req := require.New(t)
		req.ErrorIs(ValidateNew(Hero{Name: "   "}), errors.ErrInvalidHero)
		req.ErrorIs(ValidateExisting(Hero{ID: 3}), errors.ErrInvalidHero)
	})

	t.Run("should reject an update without id", func(t *testing.T) {
		require.ErrorIs(t, ValidateExisting(Hero{Name: "Storm"}), errors.ErrMissingHeroID)
	})
}
