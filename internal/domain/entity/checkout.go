package entity

// CheckoutPhase is the position of a checkout attempt in the payment handshake.
type CheckoutPhase string

const (
	CheckoutPhaseIdle             CheckoutPhase = "idle"
	CheckoutPhaseAddressSelection CheckoutPhase = "address_selection"
	CheckoutPhaseCreatingIntent   CheckoutPhase = "creating_intent"
	CheckoutPhaseAwaitingPayment  CheckoutPhase = "awaiting_payment"
	CheckoutPhaseVerifying        CheckoutPhase = "verifying"
	CheckoutPhaseComplete         CheckoutPhase = "complete"
)

// String returns the string representation of the phase.
func (p CheckoutPhase) String() string {
	return string(p)
}

// Busy reports whether a network step of the handshake is outstanding.
// The pay trigger must be disabled while busy.
func (p CheckoutPhase) Busy() bool {
	switch p {
	case CheckoutPhaseCreatingIntent, CheckoutPhaseAwaitingPayment, CheckoutPhaseVerifying:
		return true
	default:
		return false
	}
}

// CheckoutView is a read-only snapshot of a checkout attempt.
type CheckoutView struct {
	Phase             CheckoutPhase  `json:"phase"`
	Addresses         []Address      `json:"addresses"`
	SelectedAddressID string         `json:"selectedAddressId,omitempty"`
	Cart              Cart           `json:"cart"`
	Totals            Totals         `json:"totals"`
	Widget            *WidgetOptions `json:"widget,omitempty"`
	OrderID           string         `json:"orderId,omitempty"`
	LastError         string         `json:"lastError,omitempty"`
}
