package contact

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Muskhoops/FRETXPRESS/shared/contracts"
	pkgkafka "github.com/Muskhoops/FRETXPRESS/shared/kafka"
	"github.com/Muskhoops/FRETXPRESS/shared/validation"
)

const publishTimeout = 5 * time.Second

// Service validates, relays and announces contact submissions.
type Service struct {
	relay     Relay
	publisher pkgkafka.Publisher // nil: no event
	validate  *validation.Validator
	now       func() time.Time
	inflight  sync.WaitGroup
}

func NewService(relay Relay, publisher pkgkafka.Publisher) *Service {
	return &Service{
		relay:     relay,
		publisher: publisher,
		validate:  validation.New(),
		now:       time.Now,
	}
}

// Validate reports missing or malformed fields as a *validation.Error.
func (s *Service) Validate(sub Submission) error {
	return s.validate.Struct(sub)
}

// Submit relays a valid submission. The contact.submitted event is
// published in the background once the relay accepted it; a publish
// failure is only logged.
func (s *Service) Submit(ctx context.Context, sub Submission) error {
	if err := s.Validate(sub); err != nil {
		return err
	}
	if err := s.relay.Send(ctx, sub); err != nil {
		log.Printf("contact: relay failed: %v", err)
		return err
	}

	if s.publisher != nil {
		event := contracts.ContactSubmitted{
			Name:        sub.Name,
			Company:     sub.Company,
			Email:       sub.Email,
			Phone:       sub.Phone,
			SubmittedAt: s.now().UTC(),
		}
		s.inflight.Add(1)
		go func() {
			defer s.inflight.Done()
			pctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
			defer cancel()
			if err := s.publisher.PublishEvent(pctx, event.Email, contracts.EventContactSubmitted, event); err != nil {
				log.Printf("contact: publish %s failed: %v", contracts.EventContactSubmitted, err)
			}
		}()
	}
	return nil
}

// Wait blocks until background publishes finish.
func (s *Service) Wait() {
	s.inflight.Wait()
}
