// Package modal provides the request-scoped trial/subscription overlay controller.
package modal

import (
	"context"
	"errors"
	"net/http"
)

// ErrNoProvider is the panic value of FromContext when Provide did not run.
var ErrNoProvider = errors.New("modal: controller used outside provider")

// State is a snapshot of the overlay. Plan is empty for a generic trial request.
type State struct {
	Open bool
	Plan string
}

// Subscription reports whether the overlay is a plan subscription request.
func (s State) Subscription() bool { return s.Open && s.Plan != "" }

// Controller owns the overlay for one page render. It is not safe for concurrent use.
type Controller struct {
	state State
}

// OpenTrial shows the generic trial request and clears any plan.
func (c *Controller) OpenTrial() {
	c.state = State{Open: true}
}

// OpenSubscription shows a subscription request for plan. An empty plan is a trial request.
func (c *Controller) OpenSubscription(plan string) {
	c.state = State{Open: true, Plan: plan}
}

// Close hides the overlay and forgets the plan.
func (c *Controller) Close() {
	c.state = State{}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) IsOpen() bool { return c.state.Open }

type ctxKey struct{}

// WithController stores c in ctx.
func WithController(ctx context.Context, c *Controller) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the controller installed by Provide. It panics with
// ErrNoProvider when none is present.
func FromContext(ctx context.Context) *Controller {
	c, ok := ctx.Value(ctxKey{}).(*Controller)
	if !ok || c == nil {
		panic(ErrNoProvider)
	}
	return c
}

// Provide installs a fresh closed controller for every request.
func Provide(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithController(r.Context(), &Controller{})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
