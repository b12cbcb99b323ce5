package places

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"medi-assist/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// scriptedSource returns errs[i] on call i, then candidates once errs is exhausted
type scriptedSource struct {
	mu         sync.Mutex
	name       string
	errs       []error
	candidates []types.Candidate
	calls      int
}

func (s *scriptedSource) Name() string {
	if s.name == "" {
		return "fake"
	}
	return s.name
}

func (s *scriptedSource) Search(ctx context.Context, _ types.Coords, _ Query) ([]types.Candidate, error) {
	s.mu.Lock()
	call := s.calls
	s.calls++
	s.mu.Unlock()

	if call < len(s.errs) {
		if s.errs[call] == errBlock {
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return nil, s.errs[call]
	}
	return s.candidates, nil
}

func (s *scriptedSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type blockSentinel struct{}

func (blockSentinel) Error() string { return "block until context done" }

var errBlock error = blockSentinel{}
