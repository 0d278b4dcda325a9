package shipment

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Method is a payment method.
type Method string

const (
	Edahabia Method = "edahabia"
	CIB      Method = "cib"
)

// MethodOption is one entry of the payment method picker.
type MethodOption struct {
	ID          Method `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var methods = []MethodOption{
	{ID: Edahabia, Title: "Carte Edahabia", Description: "Carte postale algérienne"},
	{ID: CIB, Title: "Carte CIB", Description: "Carte interbancaire"},
}

// Methods returns the payment methods in display order.
func Methods() []MethodOption {
	out := make([]MethodOption, len(methods))
	copy(out, methods)
	return out
}

// ParseMethod validates s.
func ParseMethod(s string) (Method, error) {
	for _, m := range methods {
		if string(m.ID) == s {
			return m.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, s)
}

// RequiresCard reports whether card number, expiry and cvv must be entered.
// Edahabia payments go through without them.
func (m Method) RequiresCard() bool {
	return m == CIB
}

// Payment is the payment step as typed. It is never persisted; drafts
// keep its Selection.
type Payment struct {
	Method     Method
	CardNumber string
	Expiry     string
	CVV        string
}

// Selection drops the card data, keeping only whether it was filled in.
func (p Payment) Selection() PaymentSelection {
	return PaymentSelection{
		Method:      p.Method,
		CardEntered: p.CardNumber != "" && p.Expiry != "" && p.CVV != "",
	}
}

// Validate returns nil when the payment step is complete.
func (p Payment) Validate() error {
	return p.Selection().Validate()
}

// CanContinue reports whether the payment step may be confirmed.
func (p Payment) CanContinue() bool {
	return p.Validate() == nil
}

// PaymentSelection is what a draft remembers of the payment step.
type PaymentSelection struct {
	Method      Method `json:"method,omitempty" msgpack:"method"`
	CardEntered bool   `json:"card_entered" msgpack:"card_entered"`
}

func (s PaymentSelection) Validate() error {
	if s.Method == "" {
		return ErrPaymentMethodMissing
	}
	if s.Method.RequiresCard() && !s.CardEntered {
		return ErrCardDetailsRequired
	}
	return nil
}

func (s PaymentSelection) CanContinue() bool {
	return s.Validate() == nil
}

// Amount is a whole amount of Algerian dinars.
type Amount int64

// String formats with grouped thousands, e.g. "800,000 DA".
func (a Amount) String() string {
	return message.NewPrinter(language.English).Sprintf("%d DA", int64(a))
}

// MarshalText lets amounts travel as their display string.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// QuoteLine is one row of the payment summary.
type QuoteLine struct {
	Label  string `json:"label"`
	Amount Amount `json:"amount"`
	Value  int64  `json:"value"`
}

// Quote is the payment summary.
type Quote struct {
	Lines []QuoteLine `json:"lines"`
	Total QuoteLine   `json:"total"`
}

const (
	Subtotal   Amount = 750_000
	ServiceFee Amount = 37_500
	Tax        Amount = 12_500
)

// OrderNumber is the order identifier shown on every confirmation.
const OrderNumber = "3257-9821"

// CurrentQuote returns the payment summary. The amounts are fixed and do
// not depend on the request.
func CurrentQuote() Quote {
	lines := []QuoteLine{
		line("Sous-total", Subtotal),
		line("Frais de service (5%)", ServiceFee),
		line("TVA (19%)", Tax),
	}
	var total Amount
	for _, l := range lines {
		total += l.Amount
	}
	return Quote{Lines: lines, Total: line("Total", total)}
}

func line(label string, a Amount) QuoteLine {
	return QuoteLine{Label: label, Amount: a, Value: int64(a)}
}
