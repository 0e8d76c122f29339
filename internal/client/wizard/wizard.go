// Package wizard implements the four-step directory registration form as an
// explicit state machine: validate-then-advance, unconditional retreat and
// validate-then-submit.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aaywp/portal/internal/client/api"
	"github.com/aaywp/portal/internal/client/models"
	v "github.com/aaywp/portal/internal/client/validation"
	"github.com/aaywp/portal/internal/logging"
	"github.com/google/uuid"
)

var (
	ErrSubmitInFlight = errors.New("a submission is already in progress")
	ErrNotFinalStep   = errors.New("submit is only available on the last step")
	ErrFieldNotInStep = errors.New("field is not part of the current step")
)

const (
	MsgSubmitted      = "Registration submitted successfully!"
	MsgFailed         = "Registration failed. Please try again."
	MsgPhotoFailed    = "Profile photo upload failed. Please try again."
	msgFailedByFields = "Registration failed: "
)

// Registrar is the slice of the API client the wizard needs.
type Registrar interface {
	SubmitRegistration(ctx context.Context, p models.Registration, opts ...api.RequestOption) (models.Envelope[models.Created], error)
}

// PhotoUploader stores a local image and returns its public URL.
type PhotoUploader interface {
	Upload(ctx context.Context, path string) (string, error)
}

// Notifier receives the user-visible outcome of a submission.
type Notifier interface {
	Success(msg string)
	Failure(msg string)
}

type Option func(*Wizard)

func WithPhotoUploader(u PhotoUploader) Option {
	return func(w *Wizard) { w.photos = u }
}

func WithLogger(l logging.Logger) Option {
	return func(w *Wizard) { w.log = l }
}

// Wizard is safe for concurrent use. A submission releases the lock while
// the request is outstanding; a second Submit in that window fails with
// ErrSubmitInFlight.
type Wizard struct {
	mu         sync.Mutex
	step       Step
	inputs     map[string]string
	draft      Draft
	attempt    string
	submitting bool

	validator *v.Validator
	registrar Registrar
	photos    PhotoUploader
	notify    Notifier
	log       logging.Logger
}

func New(validator *v.Validator, registrar Registrar, notify Notifier, opts ...Option) *Wizard {
	w := &Wizard{
		validator: validator,
		registrar: registrar,
		notify:    notify,
		log:       logging.Nop(),
	}
	for _, o := range opts {
		o(w)
	}
	w.resetLocked()
	return w
}

// State is a read-only copy of the wizard.
type State struct {
	Step       Step
	Draft      Draft
	Inputs     map[string]string
	Submitting bool
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{
		Step:       w.step,
		Draft:      w.draft.clone(),
		Inputs:     Draft(w.inputs).clone(),
		Submitting: w.submitting,
	}
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// AttemptKey identifies the current draft to the backend; it changes only
// when the draft is discarded.
func (w *Wizard) AttemptKey() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.attempt
}

// Set records a form input for a field of the current step.
func (w *Wizard) Set(field, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.step.Has(field) {
		return fmt.Errorf("%w: %s", ErrFieldNotInStep, field)
	}
	w.inputs[field] = value
	return nil
}

// Input returns the current form input for field.
func (w *Wizard) Input(field string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inputs[field]
}

// ValidateStep checks the inputs rendered in step. It has no side effects.
func (w *Wizard) ValidateStep(step Step) v.Errors {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.validateLocked(step)
}

func (w *Wizard) validateLocked(step Step) v.Errors {
	return w.validator.Fields(step.Fields(), w.inputs)
}

// Advance validates the current step and, on success, merges its values
// into the draft and moves forward. On the last step it merges but stays.
// A failed validation returns v.Errors and leaves the step unchanged.
func (w *Wizard) Advance() (Step, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if errs := w.validateLocked(w.step); len(errs) > 0 {
		return w.step, errs
	}
	w.mergeLocked(w.draft, w.step)
	if w.step < lastStep {
		w.step++
	}
	return w.step, nil
}

// Retreat moves back one step without validating or discarding anything.
func (w *Wizard) Retreat() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > firstStep {
		w.step--
	}
	return w.step
}

// Reset discards the draft and every input and returns to the first step.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resetLocked()
}

func (w *Wizard) resetLocked() {
	w.step = firstStep
	w.inputs = make(map[string]string)
	w.draft = make(Draft)
	w.attempt = uuid.NewString()
}

func (w *Wizard) mergeLocked(dst Draft, step Step) {
	for _, f := range step.Fields() {
		if val, ok := w.inputs[f]; ok {
			dst[f] = val
		}
	}
}

// Submit validates the last step, transforms the draft and hands it to the
// registrar. Success discards the draft and returns to the first step;
// failure leaves step and draft untouched. The outcome is reported to the
// Notifier and returned.
func (w *Wizard) Submit(ctx context.Context) error {
	w.mu.Lock()
	if w.step != lastStep {
		w.mu.Unlock()
		return ErrNotFinalStep
	}
	if w.submitting {
		w.mu.Unlock()
		return ErrSubmitInFlight
	}
	if errs := w.validateLocked(w.step); len(errs) > 0 {
		w.mu.Unlock()
		return errs
	}

	final := w.draft.clone()
	w.mergeLocked(final, w.step)
	key := w.attempt
	w.submitting = true
	w.mu.Unlock()

	err := w.send(ctx, final, key)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false

	if err != nil {
		return err
	}
	if w.attempt == key {
		w.resetLocked()
	}
	w.notify.Success(MsgSubmitted)
	return nil
}

func (w *Wizard) send(ctx context.Context, d Draft, key string) error {
	payload, err := ToPayload(d)
	if err != nil {
		w.notify.Failure(MsgFailed)
		return err
	}

	if path := d.get(v.FieldProfilePhoto); path != "" {
		if w.photos == nil {
			w.log.Warn(ctx, "profile photo ignored, no photo storage configured", "path", path)
		} else {
			url, err := w.photos.Upload(ctx, path)
			if err != nil {
				w.log.Error(ctx, "profile photo upload failed", "path", path, "error", err)
				w.notify.Failure(MsgPhotoFailed)
				return fmt.Errorf("upload profile photo: %w", err)
			}
			payload.ProfileImage = url
		}
	}

	if _, err := w.registrar.SubmitRegistration(ctx, payload, api.WithIdempotencyKey(key)); err != nil {
		w.notify.Failure(FailureMessage(err))
		return err
	}
	return nil
}

// FailureMessage renders a submission error: per-field complaints when the
// backend sent a structured validation rejection, a generic message
// otherwise.
func FailureMessage(err error) string {
	if e, ok := api.AsError(err); ok && errors.Is(err, api.ErrValidation) && len(e.Fields) > 0 {
		return msgFailedByFields + e.FieldSummary()
	}
	return MsgFailed
}
