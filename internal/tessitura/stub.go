package tessitura

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// StubClient is the in-memory box-office used in development and tests. It
// accepts every contribution and remembers what it received.
type StubClient struct {
	mu            sync.Mutex
	submissions   []Contribution
	failWith      error
	contributions int
}

// NewStubClient creates an accepting stub.
func NewStubClient() *StubClient {
	return &StubClient{}
}

// FailWith makes every subsequent submission fail with err. Pass nil to
// restore acceptance.
func (s *StubClient) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

// Submissions returns a copy of everything submitted so far.
func (s *StubClient) Submissions() []Contribution {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Contribution, len(s.submissions))
	copy(out, s.submissions)
	return out
}

func (s *StubClient) SubmitContribution(ctx context.Context, c Contribution) (*ContributionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return nil, fmt.Errorf("box office rejected contribution: %w", s.failWith)
	}

	s.submissions = append(s.submissions, c)
	s.contributions++
	return &ContributionResult{
		ContributionID: "stub-" + uuid.NewString(),
	}, nil
}
