package app

import (
	"context"
	"fmt"

	"github.com/silver-dev/resume-checker/internal/config"
	"github.com/silver-dev/resume-checker/internal/examples"
)

// BuildReadinessCheck reports whether the service can grade: the example
// store must be populated and an engine API key configured. Both are fixed
// at startup, so readiness never flaps at runtime.
func BuildReadinessCheck(cfg config.Config, store *examples.Store) func(ctx context.Context) error {
	return func(_ context.Context) error {
		if store == nil || store.Len() == 0 {
			return fmt.Errorf("example store empty")
		}
		if cfg.OpenRouterAPIKey == "" {
			return fmt.Errorf("grading engine api key not configured")
		}
		return nil
	}
}
