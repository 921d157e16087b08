package content

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mhasan05/teamerror-portfolio/client"
)

// ErrSubmitting is returned when Submit is called while a submission is in flight.
var ErrSubmitting = errors.New("contact form: submission already in progress")

// ContactForm holds the values a visitor typed. Values survive failed
// submissions and are cleared only after the API accepts them.
type ContactForm struct {
	src Source
	log zerolog.Logger

	mu         sync.Mutex
	values     client.ContactSubmission
	fieldErrs  map[string][]string
	submitting bool
}

// Values returns the current field values.
func (f *ContactForm) Values() client.ContactSubmission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Update edits the field values in place and clears stale field errors.
func (f *ContactForm) Update(edit func(*client.ContactSubmission)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	edit(&f.values)
	f.fieldErrs = nil
}

// FieldErrors returns the per-field messages from the last rejected submission.
func (f *ContactForm) FieldErrors() map[string][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErrs
}

// Submit sends the current values. On success the form is cleared unless it was
// edited while the request was in flight; on any failure the values are kept
// and, for validation failures, FieldErrors is set.
func (f *ContactForm) Submit(ctx context.Context) (*client.ContactAck, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return nil, ErrSubmitting
	}
	f.submitting = true
	req := f.values
	f.mu.Unlock()

	ack, err := f.src.SubmitContact(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.fieldErrs = client.FieldErrors(err)
		f.log.Warn().Err(err).Int("field_errors", len(f.fieldErrs)).Msg("contact submission failed")
		return nil, err
	}
	if f.values == req {
		f.values = client.ContactSubmission{}
	}
	f.fieldErrs = nil
	f.log.Info().Int64("contact_id", ack.Data.ID).Msg("contact submission accepted")
	return ack, nil
}
