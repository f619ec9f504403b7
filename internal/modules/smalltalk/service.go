// README: Small-talk service: quota-guarded Gemini replies for unmatched requests.
package smalltalk

import "context"

// Service produces free-form replies for requests no intent rule could serve.
// A nil store disables the quota check entirely.
type Service struct {
	apiKey  string
	botName string
	store   *Store
}

// NewService creates a Service. store may be nil when no database is configured.
func NewService(apiKey, botName string, store *Store) *Service {
	return &Service{apiKey: apiKey, botName: botName, store: store}
}

// Reply generates one in-character reply to the message.
// Returns ErrQuotaExhausted when the daily budget is spent.
func (s *Service) Reply(ctx context.Context, message string) (string, error) {
	if s.store != nil {
		if err := s.useCall(ctx); err != nil {
			return "", err
		}
	}
	return callGemini(ctx, s.apiKey, s.botName, message)
}

// useCall deducts one call, initialising the budget row on first use.
func (s *Service) useCall(ctx context.Context) error {
	err := s.store.UseCall(ctx)
	if err != ErrQuotaExhausted {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureRow(ctx); initErr != nil {
		return initErr
	}
	return s.store.UseCall(ctx)
}
