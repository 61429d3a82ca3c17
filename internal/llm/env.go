package llm

import (
	"context"
	"fmt"
	"os"

	"zenstudy/internal/store"
)

// NewProviderFromEnv builds a Provider from the environment. Explicit
// ZENSTUDY_* configuration wins; otherwise the standard provider API
// key variables are probed in priority order.
func NewProviderFromEnv(ctx context.Context, callLog store.CallLog) (Provider, error) {
	cfg := ConfigFromEnv()

	if os.Getenv("ZENSTUDY_LLM_PROVIDER") == "" {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: set ZENSTUDY_LLM_PROVIDER or one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY")
		}
		cfg = discovered
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, callLog)
}
