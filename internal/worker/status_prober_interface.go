package worker

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -destination=mocks/status_prober_mock.go -package=mocks . StatusProber

// StatusProber Запрос GET /status к Espresso серверу.
type StatusProber interface {
	Status(ctx context.Context) (json.RawMessage, error)
}
