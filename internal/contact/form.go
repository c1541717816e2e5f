// Package contact owns the contact form: validation, submission to the
// order service, and the short-lived "submitted" banner state.
package contact

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"luxera-storefront/internal/domain"
	"luxera-storefront/internal/validate"
)

// Client is the slice of the order service the form needs.
type Client interface {
	SubmitContactForm(ctx context.Context, sub domain.ContactSubmission) error
}

// Form handles contact submissions for one session. After a successful
// submission the Submitted flag stays up for a fixed delay and then resets
// on its own.
type Form struct {
	client     Client
	logger     zerolog.Logger
	resetAfter time.Duration

	mu        sync.Mutex
	submitted bool
	timer     *time.Timer
}

// NewForm builds a Form with the standard 3 second banner reset.
func NewForm(client Client, logger zerolog.Logger) *Form {
	return NewFormWithReset(client, logger, 3*time.Second)
}

// NewFormWithReset builds a Form with a custom banner reset delay.
func NewFormWithReset(client Client, logger zerolog.Logger, resetAfter time.Duration) *Form {
	return &Form{
		client:     client,
		logger:     logger.With().Str("component", "contact").Logger(),
		resetAfter: resetAfter,
	}
}

// Submit validates the submission and forwards it. On validation failure
// the full field error mapping is returned and nothing is sent. An API
// failure is returned to the caller so the view can show a retryable
// notice; the entered data stays with the caller untouched.
func (f *Form) Submit(ctx context.Context, sub domain.ContactSubmission) (validate.Errors, error) {
	errs := validate.Contact(sub)
	if !errs.Valid() {
		return errs, nil
	}

	if err := f.client.SubmitContactForm(ctx, sub); err != nil {
		return nil, fmt.Errorf("submit contact form: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = true
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.resetAfter, func() {
		f.mu.Lock()
		f.submitted = false
		f.mu.Unlock()
	})

	f.logger.Info().Str("email", sub.Email).Msg("contact form submitted")
	return nil, nil
}

// Submitted reports whether the success banner is currently showing.
func (f *Form) Submitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitted
}
