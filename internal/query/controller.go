// Package query owns the request lifecycle for one question at a time.
// The Controller is the single source of truth for which of
// {nothing, a spinner, an error, an answer} the UI should show.
package query

import (
	"context"
	"strings"
	"sync"

	"sensorq/cli/internal/backend"
)

// State is the lifecycle tag of the current submission.
type State int

const (
	// Idle means no submission has been made yet.
	Idle State = iota
	// Loading means a request is in flight.
	Loading
	// Succeeded means the last submission returned an answer.
	Succeeded
	// Failed means the last submission failed.
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// FailureMessage is the only error text ever shown to the user. The underlying
// cause (network, status, payload) is not distinguished at this boundary.
const FailureMessage = "Error communicating with backend"

// Controller mediates between user input and the backend. It holds the query
// text being edited, the lifecycle state, and the outcome of the last settled
// submission. All mutation goes through its methods; the mutex makes the
// completion callback safe to deliver from another goroutine (the chat screen
// finishes submissions from a background command).
type Controller struct {
	mu     sync.Mutex
	text   string
	state  State
	answer *backend.Answer
	errMsg string
}

// NewController creates a controller in the Idle state with an empty query.
func NewController() *Controller {
	return &Controller{state: Idle}
}

// SetQuery replaces the query text. Permitted in any state, no side effects.
func (c *Controller) SetQuery(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
}

// Query returns the current query text.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Answer returns the answer of the last successful submission, or nil.
func (c *Controller) Answer() *backend.Answer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.answer
}

// ErrorMessage returns the user-facing message of the last failed submission,
// or an empty string.
func (c *Controller) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// CanSubmit reports whether a submission would be admitted right now:
// no request in flight and a non-blank query. The UI disables its submit
// affordance on the same condition, but the check here is authoritative.
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state != Loading && strings.TrimSpace(c.text) != ""
}

// Begin starts a submission. It returns the query to send and true when
// admitted; a blank query or an in-flight request makes it a no-op returning
// false. On admission any prior answer and error message are cleared and the
// state moves to Loading.
func (c *Controller) Begin() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Loading {
		return "", false
	}
	q := strings.TrimSpace(c.text)
	if q == "" {
		return "", false
	}

	c.answer = nil
	c.errMsg = ""
	c.state = Loading
	return c.text, true
}

// Finish settles the in-flight submission. A nil error stores the answer and
// moves to Succeeded; any error is collapsed to the fixed FailureMessage and
// moves to Failed. Calling Finish without a matching Begin is ignored.
func (c *Controller) Finish(ans *backend.Answer, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Loading {
		return
	}
	if err != nil || ans == nil {
		c.errMsg = FailureMessage
		c.state = Failed
		return
	}
	c.answer = ans
	c.state = Succeeded
}

// Submit runs a whole submission synchronously against the given backend:
// Begin, one blocking call, Finish. admitted is false only when Begin rejected
// the submission (blank query or one already in flight); a request that ran
// and failed still returns admitted true, with the outcome in State, Answer
// and ErrorMessage. The returned error is the underlying cause of a failed
// request, for verbose diagnostics only.
func (c *Controller) Submit(ctx context.Context, api backend.API) (admitted bool, err error) {
	q, ok := c.Begin()
	if !ok {
		return false, nil
	}
	ans, err := api.Ask(ctx, q)
	c.Finish(ans, err)
	return true, err
}
