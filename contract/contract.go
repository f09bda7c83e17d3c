//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Failure is the raw detail of a failed gateway operation.
// It never reaches the UI, only the diagnostic sink.
type Failure struct {
	Operation string
	RequestID uuid.UUID
	Err       error
	At        time.Time
}

// DiagnosticSink receives failures out of band, away from the user-facing message log.
type DiagnosticSink interface {
	Report(ctx context.Context, failure Failure)
}
