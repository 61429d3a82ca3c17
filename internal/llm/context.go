package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// Purpose labels attached to outgoing requests. The call log groups
// usage by these.
const (
	PurposeQuizGen = "quiz-gen"
	PurposeDeepen  = "deepen"
	PurposeAnalyze = "analyze"
)

// WithPurpose attaches a purpose label to the context for call logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context. Requests made
// without a label are logged as "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
