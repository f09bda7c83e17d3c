package main

import (
	"context"
	"flag"
	"fmt"
	"hero-lab/domain"
	"hero-lab/services"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type command struct {
	name string
	id   int
	hero domain.Hero
}

const usage = "usage: heroes list | get <id> | add <name> | update <id> <name> | delete <id>"

func parseCommand(args []string) (command, error) {
	fs := flag.NewFlagSet("heroes", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return command{}, err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return command{}, fmt.Errorf(usage)
	}

	cmd := command{name: rest[0]}
	switch cmd.name {
	case "list":
		return cmd, nil
	case "get", "delete":
		if len(rest) != 2 {
			return command{}, fmt.Errorf(usage)
		}
		id, err := parseID(rest[1])
		if err != nil {
			return command{}, err
		}
		cmd.id = id
		return cmd, nil
	case "add":
		if len(rest) < 2 {
			return command{}, fmt.Errorf(usage)
		}
		cmd.hero = domain.Hero{Name: strings.Join(rest[1:], " ")}
		return cmd, nil
	case "update":
		if len(rest) < 3 {
			return command{}, fmt.Errorf(usage)
		}
		id, err := parseID(rest[1])
		if err != nil {
			return command{}, err
		}
		cmd.id = id
		cmd.hero = domain.Hero{ID: id, Name: strings.Join(rest[2:], " ")}
		return cmd, nil
	default:
		return command{}, fmt.Errorf("unknown command %q, %s", cmd.name, usage)
	}
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("hero id must be a positive integer, got %q", raw)
	}
	return id, nil
}

// execute runs the command and returns the heroes worth displaying.
// Failures already landed in the message log.
func (c command) execute(ctx context.Context, svc services.IHeroService) []domain.Hero {
	switch c.name {
	case "list":
		return svc.GetHeroes(ctx)
	case "get":
		return heroesOf(svc.GetHero(ctx, c.id))
	case "add":
		return heroesOf(svc.AddHero(ctx, c.hero))
	case "update":
		if svc.UpdateHero(ctx, c.hero) == nil {
			return nil
		}
		return []domain.Hero{c.hero}
	case "delete":
		return heroesOf(svc.DeleteHero(ctx, domain.KeyFromID(c.id)))
	}
	return nil
}

func heroesOf(hero *domain.Hero) []domain.Hero {
	if hero == nil {
		return nil
	}
	return []domain.Hero{lo.FromPtr(hero)}
}
