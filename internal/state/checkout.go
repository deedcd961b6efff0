package state

import (
	"slices"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

// Checkout is the state of one checkout attempt. Phase changes happen only
// through the methods below, each of which checks the current phase under the
// same lock that moves it.
type Checkout struct {
	mu         sync.Mutex
	phase      entity.CheckoutPhase
	addresses  []entity.Address
	selectedID string
	totals     entity.Totals
	intent     *entity.PaymentIntent
	handle     service.WidgetHandle
	orderID    string
	lastErr    string
	// settledID is the intent whose widget was settled last.
	settledID string
}

// NewCheckout returns an idle checkout.
func NewCheckout() *Checkout {
	return &Checkout{phase: entity.CheckoutPhaseIdle}
}

// Phase returns the current phase.
func (c *Checkout) Phase() entity.CheckoutPhase {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.phase
}

// Open starts address selection with list. A finished or idle attempt is
// replaced; an attempt with a payment step outstanding is not.
func (c *Checkout) Open(list []entity.Address) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase.Busy() {
		return domainerrors.ErrCheckoutInProgress
	}

	c.phase = entity.CheckoutPhaseAddressSelection
	c.addresses = slices.Clone(list)
	c.selectedID = ""
	if addr, ok := entity.SelectDefault(list); ok {
		c.selectedID = addr.ID
	}
	c.totals = entity.Totals{}
	c.intent = nil
	c.handle = nil
	c.orderID = ""
	c.lastErr = ""

	return nil
}

// RefreshAddresses replaces the address list after an edit. The selection is
// kept when its id is still present and re-derived otherwise. While a payment
// step is outstanding only the list changes.
func (c *Checkout) RefreshAddresses(list []entity.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.addresses = slices.Clone(list)
	if c.phase.Busy() {
		return
	}
	if _, ok := entity.FindAddress(list, c.selectedID); ok {
		return
	}
	c.selectedID = ""
	if addr, ok := entity.SelectDefault(list); ok {
		c.selectedID = addr.ID
	}
}

// Select picks the delivery address.
func (c *Checkout) Select(addressID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requirePhase(entity.CheckoutPhaseAddressSelection); err != nil {
		return err
	}
	if _, ok := entity.FindAddress(c.addresses, addressID); !ok {
		return domainerrors.ErrNotFound.WithDetails("address " + addressID + " is not in the address book")
	}
	c.selectedID = addressID

	return nil
}

// StartIntent moves address selection to intent creation with totals fixed
// for the rest of the attempt. It returns the selected address id.
func (c *Checkout) StartIntent(totals entity.Totals) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requirePhase(entity.CheckoutPhaseAddressSelection); err != nil {
		return "", err
	}
	if c.selectedID == "" {
		c.lastErr = domainerrors.ErrNoAddressSelected.Message()

		return "", domainerrors.ErrNoAddressSelected
	}

	c.phase = entity.CheckoutPhaseCreatingIntent
	c.totals = totals
	c.intent = nil
	c.handle = nil
	c.lastErr = ""

	return c.selectedID, nil
}

// AwaitPayment records the created intent and the opened widget.
func (c *Checkout) AwaitPayment(intent *entity.PaymentIntent, handle service.WidgetHandle) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requirePhase(entity.CheckoutPhaseCreatingIntent); err != nil {
		return err
	}
	c.phase = entity.CheckoutPhaseAwaitingPayment
	c.intent = intent
	c.handle = handle

	return nil
}

// AcceptProof settles the widget with a successful payment and moves to
// verification. It returns the selected address id.
func (c *Checkout) AcceptProof(proof entity.PaymentProof) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	handle, err := c.currentHandle(proof.IntentID)
	if err != nil {
		return "", err
	}
	if err := handle.Succeed(proof); err != nil {
		return "", err
	}
	c.phase = entity.CheckoutPhaseVerifying

	return c.selectedID, nil
}

// AcceptFailure settles the widget with a failure and returns to address
// selection. An empty intentID refers to the current intent.
func (c *Checkout) AcceptFailure(intentID, reason string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if intentID == "" && c.intent != nil {
		intentID = c.intent.ID
	}
	handle, err := c.currentHandle(intentID)
	if err != nil {
		return err
	}
	if err := handle.Fail(reason); err != nil {
		return err
	}
	c.abort(reason)

	return nil
}

// Abort returns a failed step to address selection with message shown to the user.
func (c *Checkout) Abort(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.abort(message)
}

// Complete finishes the attempt with the order the backend created.
func (c *Checkout) Complete(orderID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requirePhase(entity.CheckoutPhaseVerifying); err != nil {
		return err
	}
	c.phase = entity.CheckoutPhaseComplete
	c.orderID = orderID
	c.forgetIntent()

	return nil
}

// Intent returns the intent of the attempt, nil outside the payment steps.
func (c *Checkout) Intent() *entity.PaymentIntent {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.intent == nil {
		return nil
	}
	intent := *c.intent

	return &intent
}

// View returns a snapshot of the attempt. Cart and totals of the attempt are
// included as far as they are known.
func (c *Checkout) View() entity.CheckoutView {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := entity.CheckoutView{
		Phase:             c.phase,
		Addresses:         slices.Clone(c.addresses),
		SelectedAddressID: c.selectedID,
		Totals:            c.totals,
		OrderID:           c.orderID,
		LastError:         c.lastErr,
	}
	if c.handle != nil && c.phase == entity.CheckoutPhaseAwaitingPayment {
		opts := c.handle.Options()
		view.Widget = &opts
	}

	return view
}

func (c *Checkout) requirePhase(want entity.CheckoutPhase) error {
	if c.phase == want {
		return nil
	}
	if c.phase.Busy() {
		return domainerrors.ErrCheckoutInProgress.WithDetails("checkout is " + c.phase.String())
	}

	return domainerrors.ErrInvalidCheckoutPhase.WithDetails("checkout is " + c.phase.String())
}

// currentHandle resolves the widget of intentID. Settling twice is reported by
// the handle itself, so a settled handle of the current intent is returned too.
func (c *Checkout) currentHandle(intentID string) (service.WidgetHandle, error) {
	if c.intent == nil || c.handle == nil {
		if intentID != "" && intentID == c.settledID {
			return nil, domainerrors.ErrWidgetAlreadySettled
		}

		return nil, domainerrors.ErrInvalidCheckoutPhase.WithDetails("no payment is awaited")
	}
	if c.intent.ID != intentID {
		return nil, domainerrors.ErrIntentMismatch
	}

	return c.handle, nil
}

func (c *Checkout) abort(message string) {
	c.phase = entity.CheckoutPhaseAddressSelection
	c.forgetIntent()
	c.lastErr = message
}

func (c *Checkout) forgetIntent() {
	if c.intent != nil {
		c.settledID = c.intent.ID
	}
	c.intent = nil
	c.handle = nil
}
