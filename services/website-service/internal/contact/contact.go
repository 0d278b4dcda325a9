// Package contact validates the marketing-site contact form and relays it.
package contact

import (
	"errors"
	"net/url"
	"strings"
)

// Messages shown under the form.
const (
	SuccessMessage = "Merci ! Votre demande a bien été envoyée."
	FailureMessage = "Échec de l'envoi. Veuillez réessayer."
)

var (
	ErrRelayRejected    = errors.New("contact relay rejected the submission")
	ErrRelayUnavailable = errors.New("contact relay unreachable")
)

// Submission is one "Contact / Devis" request. Phone is optional.
type Submission struct {
	Name    string `json:"name" validate:"notblank"`
	Company string `json:"company" validate:"notblank"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"notblank"`
}

// FromForm reads a submission from url-encoded or multipart form values.
func FromForm(v url.Values) Submission {
	return Submission{
		Name:    v.Get("name"),
		Company: v.Get("company"),
		Email:   v.Get("email"),
		Phone:   v.Get("phone"),
		Message: v.Get("message"),
	}
}

// Form is the body posted to the relay. Captcha is disabled so the relay
// answers JSON instead of an interstitial page.
func (s Submission) Form() url.Values {
	return url.Values{
		"name":     {strings.TrimSpace(s.Name)},
		"company":  {strings.TrimSpace(s.Company)},
		"email":    {strings.TrimSpace(s.Email)},
		"phone":    {strings.TrimSpace(s.Phone)},
		"message":  {s.Message},
		"_captcha": {"false"},
	}
}
