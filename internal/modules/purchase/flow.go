package purchase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/georgemunganga/carmarket-backend/internal/modules/auth"
	"github.com/georgemunganga/carmarket-backend/internal/modules/catalog"
	"github.com/georgemunganga/carmarket-backend/internal/modules/order"
	"github.com/georgemunganga/carmarket-backend/internal/modules/user"
	"github.com/google/uuid"
)

// Navigator schedules screen transitions on behalf of the flow. The flow
// knows route targets, never concrete navigation mechanics.
type Navigator interface {
	Navigate(target string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(target string)

func (f NavigatorFunc) Navigate(target string) { f(target) }

// FlowState classifies one purchase attempt.
type FlowState string

const (
	StateIdle      FlowState = "idle"
	StateRejected  FlowState = "rejected"
	StateInitiated FlowState = "initiated"
)

// Guard failure reasons surfaced to the buyer.
const (
	ReasonNotBuyer    = "must be an authenticated buyer"
	ReasonUnavailable = "listing not available"
)

// DefaultRedirectDelay is how long a successful flow waits before
// navigating back to the browse screen.
const DefaultRedirectDelay = 2 * time.Second

// RejectedError reports a purchase attempt stopped by an entry guard. It
// is terminal for the attempt but not for the session; the buyer may retry.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string { return e.Reason }

// Flow is a short-lived state machine driving one purchase attempt. On
// success it marks the listing sold, appends a pending order and schedules
// a deferred navigation back to the browse screen. The navigation is
// cancellable so a torn-down screen is never navigated.
type Flow struct {
	store  catalog.Store
	orders order.Repository
	nav    Navigator
	delay  time.Duration

	mu      sync.Mutex
	state   FlowState
	message string
	timer   *time.Timer
}

// NewFlow creates an idle flow. A non-positive delay falls back to
// DefaultRedirectDelay.
func NewFlow(store catalog.Store, orders order.Repository, nav Navigator, delay time.Duration) *Flow {
	if delay <= 0 {
		delay = DefaultRedirectDelay
	}
	return &Flow{
		store:  store,
		orders: orders,
		nav:    nav,
		delay:  delay,
		state:  StateIdle,
	}
}

// State returns the flow's current state.
func (f *Flow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Message returns the user-facing status message of the last attempt.
func (f *Flow) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Initiate runs the entry guards and, when they pass, performs the
// purchase. Availability is re-checked here even though the UI disables
// the action for non-available listings: it can change between render and
// click.
func (f *Flow) Initiate(ctx context.Context, principal *user.User, listingID uuid.UUID) error {
	if principal == nil || principal.Role != user.RoleBuyer {
		return f.reject(ReasonNotBuyer)
	}

	listing, err := f.store.Get(ctx, listingID)
	if err != nil {
		return f.reject(ReasonUnavailable)
	}
	if listing.Status != catalog.StatusAvailable {
		return f.reject(ReasonUnavailable)
	}

	patch := catalog.PatchOf(listing)
	patch.Status = catalog.StatusSold
	if _, err := f.store.Update(ctx, listingID, patch); err != nil {
		return fmt.Errorf("marking listing sold: %w", err)
	}

	o := &order.Order{
		ID:        uuid.New(),
		ListingID: listingID,
		BuyerID:   principal.ID,
		Status:    order.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := f.orders.CreateOrder(ctx, o); err != nil {
		// Roll the status back so a failed initiation leaves no partial
		// write behind.
		if _, rbErr := f.store.Update(ctx, listingID, catalog.PatchOf(listing)); rbErr != nil {
			return fmt.Errorf("recording order: %w (rollback failed: %v)", err, rbErr)
		}
		return fmt.Errorf("recording order: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateInitiated
	f.message = fmt.Sprintf("Successfully initiated purchase for listing %s. Redirecting to products page...", listingID)
	f.timer = time.AfterFunc(f.delay, func() {
		f.nav.Navigate(auth.RouteBrowse)
	})
	return nil
}

// Cancel stops a pending navigation. Called on screen teardown; a flow
// whose screen is gone must not navigate.
func (f *Flow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

func (f *Flow) reject(reason string) error {
	f.mu.Lock()
	f.state = StateRejected
	f.message = reason
	f.mu.Unlock()
	return &RejectedError{Reason: reason}
}
