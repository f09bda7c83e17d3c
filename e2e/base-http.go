package e2e

import (
	"bytes"
	"context"
	"fmt"
	"hero-lab/repositories"
	"hero-lab/services"
	"hero-lab/sink"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration and skips when no backend is configured
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.BaseURL == "" {
		s.T().Skip("HEROES_API_BASE_URL is not set")
	}
}

// tracingClient logs every exchange on the test output, bodies included when DebugJSON is on
type tracingClient struct {
	t         *testing.T
	next      repositories.HTTPClient
	debugJSON bool
}

func (c tracingClient) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	var reqBody []byte
	if c.debugJSON && req.Body != nil {
		reqBody, _ = io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(reqBody))
	}

	resp, err := c.next.Do(req)

	logBuilder := strings.Builder{}
	status := "ERROR"
	if err == nil {
		status = resp.Status
	}
	fmt.Fprintf(&logBuilder, "HTTP %s %s [%s] in %v", req.Method, req.URL, status, time.Since(start))
	if c.debugJSON {
		fmt.Fprintln(&logBuilder, "\nREQUEST:")
		fmt.Fprintln(&logBuilder, string(reqBody))
		if err != nil {
			fmt.Fprintln(&logBuilder, "ERROR:", err)
		} else {
			respBody, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			resp.Body = io.NopCloser(bytes.NewReader(respBody))
			fmt.Fprintln(&logBuilder, "RESPONSE:")
			fmt.Fprintln(&logBuilder, string(respBody))
		}
	}
	c.t.Log(logBuilder.String())
	return resp, err
}

// WithHeroService provides a hero service wired against the live backend within a contextual test step
func (s *BaseHTTPSuite) WithHeroService(name string, fn func(ctx context.Context, svc *services.HeroService, messages *services.MessageService)) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	client := tracingClient{t: s.T(), next: &http.Client{Timeout: 10 * time.Second}, debugJSON: s.Config.DebugJSON}
	messages := services.NewMessageService()
	svc := services.NewHeroService(
		repositories.NewHeroRepository(client, log, s.Config.BaseURL),
		messages,
		sink.NewLogSink(log),
		log,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fn(ctx, svc, messages)
}
