package entity

// PaymentIntent is the server-issued handle for one payment attempt.
// Amount is an integer in the currency's smallest charged unit.
type PaymentIntent struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PaymentProof is what the payment widget hands back on success.
type PaymentProof struct {
	IntentID  string `json:"intentId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// Prefill is the contact information the widget pre-populates.
type Prefill struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Contact string `json:"contact,omitempty"`
}

// WidgetTheme controls the widget's look.
type WidgetTheme struct {
	Color string `json:"color,omitempty"`
}

// WidgetOptions is everything the browser needs to open the hosted payment widget.
type WidgetOptions struct {
	Handle      string      `json:"handle"`
	KeyID       string      `json:"key"`
	IntentID    string      `json:"orderId"`
	Amount      int64       `json:"amount"`
	Currency    string      `json:"currency"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Prefill     Prefill     `json:"prefill"`
	Theme       WidgetTheme `json:"theme"`
}
