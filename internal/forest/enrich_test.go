package forest

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bjulian5/integrate/internal/model"
)

type MockAuthorLookup struct {
	mock.Mock
}

func (m *MockAuthorLookup) LookupAuthor(ctx context.Context, number int) (string, error) {
	args := m.Called(number)
	return args.String(0), args.Error(1)
}

func TestEnrich(t *testing.T) {
	f := model.Forest{
		{
			Number: model.Resolved(10),
			Children: []model.PRNode{
				{Number: model.Resolved(11)},
			},
		},
		{Number: model.Resolved(20)},
	}

	lookup := &MockAuthorLookup{}
	lookup.On("LookupAuthor", 10).Return("alice", nil).Once()
	lookup.On("LookupAuthor", 11).Return("bob", nil).Once()
	lookup.On("LookupAuthor", 20).Return("carol", nil).Once()

	err := Enrich(context.Background(), f, lookup, 2)
	require.NoError(t, err)

	assert.Equal(t, "alice", f[0].Author)
	assert.Equal(t, "bob", f[0].Children[0].Author)
	assert.Equal(t, "carol", f[1].Author)
	lookup.AssertExpectations(t)
}

func TestEnrich_PropagatesLookupFailure(t *testing.T) {
	f := model.Forest{{Number: model.Resolved(10)}}
	apiErr := errors.New("HTTP 401: Bad credentials")

	lookup := &MockAuthorLookup{}
	lookup.On("LookupAuthor", 10).Return("", apiErr)

	err := Enrich(context.Background(), f, lookup, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, apiErr)
	assert.Contains(t, err.Error(), "PR #10")
}

func TestEnrich_RejectsUnresolvedNodes(t *testing.T) {
	f := model.Forest{{Number: model.Resolved(10), Children: []model.PRNode{{SourceHash: "p4"}}}}

	lookup := &MockAuthorLookup{}

	err := Enrich(context.Background(), f, lookup, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "p4")
	lookup.AssertNotCalled(t, "LookupAuthor", mock.Anything)
}

func TestEnrich_EmptyForest(t *testing.T) {
	require.NoError(t, Enrich(context.Background(), model.Forest{}, &MockAuthorLookup{}, 4))
}

// limitLookup records how many lookups are in flight at once
type limitLookup struct {
	mu       sync.Mutex
	inFlight int
	peak     int
	calls    atomic.Int32
	release  chan struct{}
}

func (l *limitLookup) LookupAuthor(ctx context.Context, number int) (string, error) {
	l.mu.Lock()
	l.inFlight++
	if l.inFlight > l.peak {
		l.peak = l.inFlight
	}
	l.mu.Unlock()

	l.calls.Add(1)
	<-l.release

	l.mu.Lock()
	l.inFlight--
	l.mu.Unlock()
	return "user", nil
}

func TestEnrich_RespectsConcurrencyLimit(t *testing.T) {
	var f model.Forest
	for i := 1; i <= 8; i++ {
		f = append(f, model.PRNode{Number: model.Resolved(i)})
	}

	lookup := &limitLookup{release: make(chan struct{})}
	done := make(chan error, 1)
	go func() {
		done <- Enrich(context.Background(), f, lookup, 3)
	}()

	for i := 0; i < len(f); i++ {
		lookup.release <- struct{}{}
	}
	require.NoError(t, <-done)

	assert.Equal(t, int32(len(f)), lookup.calls.Load())
	assert.LessOrEqual(t, lookup.peak, 3)
}
