package main

import (
	"context"
	"fmt"
	"hero-lab/internal"
	"hero-lab/repositories"
	"hero-lab/services"
	"hero-lab/sink"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the heroes CLI.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "heroes: %v\n", err)
	}
	os.Exit(code)
}

// run wires the message log, the diagnostic sink and the hero service, executes one
// command and prints its result followed by the message log.
func run(args []string) (int, error) {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	cmd, err := parseCommand(args)
	if err != nil {
		return exitConfig, err
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	messages := services.NewMessageService()
	httpClient := &http.Client{Timeout: config.HTTPTimeout}
	repository := repositories.NewHeroRepository(httpClient, log, config.BaseURL)
	heroService := services.NewHeroService(repository, messages, sink.NewLogSink(log), log)

	log.Debug("Running command", "command", cmd.name, "base_url", config.BaseURL)
	heroes := cmd.execute(ctx, heroService)

	renderHeroes(os.Stdout, heroes)
	renderMessages(os.Stdout, messages.Messages(), config.Colours)
	return exitOK, nil
}
