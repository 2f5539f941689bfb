package query

import (
	"context"
	"errors"
	"sync"
	"testing"

	"sensorq/cli/internal/backend"
)

// fakeBackend scripts one response per Ask call and counts invocations.
type fakeBackend struct {
	mu     sync.Mutex
	calls  int
	answer *backend.Answer
	err    error
	// block, when non-nil, holds Ask until the channel is closed
	block chan struct{}
	// started, when non-nil, is closed once the first Ask call is entered
	started chan struct{}
	once    sync.Once
}

func (f *fakeBackend) Ask(ctx context.Context, query string) (*backend.Answer, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.started != nil {
		f.once.Do(func() { close(f.started) })
	}
	if f.block != nil {
		<-f.block
	}
	return f.answer, f.err
}

func (f *fakeBackend) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestSubmitSuccess(t *testing.T) {
	api := &fakeBackend{answer: &backend.Answer{Summary: "Room 3 wins"}}
	c := NewController()
	c.SetQuery("Which room had the highest temperature last week?")

	ok, err := c.Submit(context.Background(), api)
	if !ok || err != nil {
		t.Fatalf("Submit() = %v, %v", ok, err)
	}
	if c.State() != Succeeded {
		t.Errorf("state = %v, want Succeeded", c.State())
	}
	if c.Answer() == nil || c.Answer().Summary != "Room 3 wins" {
		t.Errorf("answer = %+v", c.Answer())
	}
	if c.ErrorMessage() != "" {
		t.Errorf("error message = %q, want empty", c.ErrorMessage())
	}
}

func TestSubmitFailureCollapsesToGenericMessage(t *testing.T) {
	api := &fakeBackend{err: errors.New("connect: connection refused")}
	c := NewController()
	c.SetQuery("anything")

	ok, err := c.Submit(context.Background(), api)
	if !ok {
		t.Fatal("submission not admitted")
	}
	if err == nil {
		t.Fatal("underlying cause not returned")
	}
	if c.State() != Failed {
		t.Errorf("state = %v, want Failed", c.State())
	}
	if c.ErrorMessage() != FailureMessage {
		t.Errorf("error message = %q, want %q", c.ErrorMessage(), FailureMessage)
	}
	if c.Answer() != nil {
		t.Errorf("answer = %+v, want nil", c.Answer())
	}
}

func TestBlankQueryIsNoOp(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "empty", query: ""},
		{name: "whitespace only", query: "   \n\t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeBackend{answer: &backend.Answer{}}
			c := NewController()
			c.SetQuery(tt.query)

			ok, _ := c.Submit(context.Background(), api)
			if ok {
				t.Error("blank query was admitted")
			}
			if c.State() != Idle {
				t.Errorf("state = %v, want Idle", c.State())
			}
			if api.callCount() != 0 {
				t.Errorf("backend called %d times, want 0", api.callCount())
			}
		})
	}
}

func TestSingleFlight(t *testing.T) {
	release := make(chan struct{})
	inFlight := make(chan struct{})
	api := &fakeBackend{answer: &backend.Answer{Summary: "done"}, block: release, started: inFlight}
	c := NewController()
	c.SetQuery("first question")

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = c.Submit(context.Background(), api)
	}()

	// Wait until the first submission is in flight.
	<-inFlight
	if c.State() != Loading {
		t.Fatalf("state = %v, want Loading", c.State())
	}

	// A second submission while Loading must be refused without touching
	// the backend.
	c.SetQuery("second question")
	if _, ok := c.Begin(); ok {
		t.Error("second submission admitted while first is in flight")
	}
	if got := api.callCount(); got != 1 {
		t.Errorf("backend called %d times, want 1", got)
	}

	close(release)
	<-done

	if c.State() != Succeeded {
		t.Errorf("state = %v, want Succeeded after settle", c.State())
	}
}

func TestResubmitClearsPriorOutcome(t *testing.T) {
	c := NewController()

	// First submission fails.
	c.SetQuery("q1")
	_, _ = c.Submit(context.Background(), &fakeBackend{err: errors.New("boom")})
	if c.ErrorMessage() != FailureMessage {
		t.Fatalf("setup: error message = %q", c.ErrorMessage())
	}

	// Second submission: the error must be gone before the new state resolves.
	q, ok := c.Begin()
	if !ok || q != "q1" {
		t.Fatalf("Begin() = %q, %v", q, ok)
	}
	if c.ErrorMessage() != "" {
		t.Errorf("error message survives into next submission: %q", c.ErrorMessage())
	}
	if c.State() != Loading {
		t.Errorf("state = %v, want Loading", c.State())
	}
	c.Finish(&backend.Answer{Summary: "ok"}, nil)

	// Third submission clears the stored answer the same way.
	if _, ok := c.Begin(); !ok {
		t.Fatal("third submission not admitted")
	}
	if c.Answer() != nil {
		t.Errorf("answer survives into next submission: %+v", c.Answer())
	}
	c.Finish(nil, errors.New("boom again"))
	if c.State() != Failed {
		t.Errorf("state = %v, want Failed", c.State())
	}
}

func TestSubmissionAlwaysSettles(t *testing.T) {
	c := NewController()
	c.SetQuery("q")

	// nil answer with nil error is still a failure, never a stuck Loading.
	if _, ok := c.Begin(); !ok {
		t.Fatal("not admitted")
	}
	c.Finish(nil, nil)
	if c.State() != Failed {
		t.Errorf("state = %v, want Failed for nil answer", c.State())
	}
}

func TestFinishWithoutBeginIsIgnored(t *testing.T) {
	c := NewController()
	c.Finish(&backend.Answer{Summary: "ghost"}, nil)
	if c.State() != Idle || c.Answer() != nil {
		t.Errorf("state = %v, answer = %+v; stray Finish mutated state", c.State(), c.Answer())
	}
}

func TestSetQueryAllowedWhileLoading(t *testing.T) {
	c := NewController()
	c.SetQuery("original")
	if _, ok := c.Begin(); !ok {
		t.Fatal("not admitted")
	}
	c.SetQuery("edited during flight")
	if c.Query() != "edited during flight" {
		t.Errorf("query = %q", c.Query())
	}
	c.Finish(&backend.Answer{}, nil)
}
