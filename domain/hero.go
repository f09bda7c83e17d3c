// Package domain contains the core concepts of the heroes client.
// Heroes are identified by a server-assigned integer id.
package domain

import (
	"fmt"
	"hero-lab/errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Hero is the single record type exposed by the heroes API.
// ID is omitted from request bodies when zero so the server can assign it.
type Hero struct {
	ID   int    `json:"id,omitempty" validate:"gte=0"`
	Name string `json:"name" validate:"required"`
}

// Is reports whether both heroes share the same identity.
func (h Hero) Is(other Hero) bool {
	return h.ID == other.ID
}

func (h Hero) String() string {
	return fmt.Sprintf("%d:%s", h.ID, h.Name)
}

// ValidateNew checks a hero before creation: the id may be absent but the name is mandatory.
func ValidateNew(h Hero) error {
	h.Name = strings.TrimSpace(h.Name)
	if err := validate.Struct(h); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidHero, err)
	}
	return nil
}

// ValidateExisting checks a hero before a whole-record replace, which is keyed by id.
func ValidateExisting(h Hero) error {
	if h.ID <= 0 {
		return errors.ErrMissingHeroID
	}
	return ValidateNew(h)
}

// Ack is the opaque acknowledgement returned by the server after an update.
type Ack struct {
	Status int
	Body   []byte
}

// HeroKey identifies the hero to delete, either by id or by a full record.
// Use KeyFromID or KeyFromHero to build one.
type HeroKey struct {
	id   int
	hero *Hero
}

func KeyFromID(id int) HeroKey {
	return HeroKey{id: id}
}

func KeyFromHero(h Hero) HeroKey {
	return HeroKey{hero: &h}
}

// ID resolves the key to a plain id. A record without an id is rejected
// instead of producing a request for "<base>/heroes/0".
func (k HeroKey) ID() (int, error) {
	if k.hero == nil {
		return k.id, nil
	}
	if k.hero.ID <= 0 {
		return 0, fmt.Errorf("%w: %q", errors.ErrMissingHeroID, k.hero.Name)
	}
	return k.hero.ID, nil
}
