package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"estimate_wizard/internal/domain/catalog"
	"estimate_wizard/internal/domain/entities"
	"estimate_wizard/internal/usecase/interfaces"
	"estimate_wizard/internal/usecase/pricing"
	"estimate_wizard/internal/usecase/validation"

	"github.com/google/uuid"
)

var (
	ErrSubmissionInProgress = errors.New("submission in progress")
	ErrAlreadySubmitted     = errors.New("estimate already submitted")
	ErrNotOnFinalStep       = errors.New("submit is only allowed on the final step")
	ErrRecordInvalid        = errors.New("estimate record is invalid")
	ErrSubmissionFailed     = errors.New("estimate submission failed")
	ErrResetNotAllowed      = errors.New("wizard cannot be reset in its current state")
)

// SubmitFailureMessage is shown when the submission boundary fails. It is not
// tied to any field.
const SubmitFailureMessage = "We couldn't send your estimate request. Your answers are saved, please try again."

// StepResult is the outcome of GoNext. A failed gate is data, not an error.
type StepResult struct {
	Advanced bool
	Step     int
	Errors   validation.FieldErrors
}

// Snapshot is a read-only view of a wizard for rendering.
type Snapshot struct {
	SessionID      string
	State          entities.WizardState
	Errors         validation.FieldErrors
	EstimatedPrice float64
	Recommended    []entities.ServiceOption
	SubmitError    string
	Record         *entities.EstimateRecord
}

// Controller owns one visitor's WizardState and enforces the step order.
//
// A Controller is safe for concurrent use. While a submission is in flight
// every mutating call is rejected with ErrSubmissionInProgress and leaves the
// state untouched.
type Controller struct {
	mu sync.Mutex

	sessionID string
	state     entities.WizardState
	errors    validation.FieldErrors
	submitErr string
	failed    bool
	record    *entities.EstimateRecord

	catalog   *catalog.Catalog
	rules     *validation.Rules
	drafts    *DraftStore
	submitter interfaces.IEstimateSubmitter

	eager    bool
	onStatus func(from, to entities.WizardStatus)
	now      func() time.Time
	newID    func() string
}

type ControllerOption func(*Controller)

// WithEagerValidation re-validates the active step after every setter so the
// UI can show live errors. GoNext and Submit stay authoritative.
func WithEagerValidation(enabled bool) ControllerOption {
	return func(c *Controller) { c.eager = enabled }
}

// WithStatusHook registers fn for every status transition. fn runs while the
// controller is locked and must not call back into it.
func WithStatusHook(fn func(from, to entities.WizardStatus)) ControllerOption {
	return func(c *Controller) { c.onStatus = fn }
}

func WithControllerClock(now func() time.Time) ControllerOption {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

func WithIDGenerator(fn func() string) ControllerOption {
	return func(c *Controller) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// NewController mounts a wizard: the stored draft is loaded once and the
// wizard starts empty when there is none.
func NewController(
	ctx context.Context,
	sessionID string,
	cat *catalog.Catalog,
	rules *validation.Rules,
	drafts *DraftStore,
	submitter interfaces.IEstimateSubmitter,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		sessionID: sessionID,
		state:     entities.NewWizardState(),
		errors:    validation.FieldErrors{},
		catalog:   cat,
		rules:     rules,
		drafts:    drafts,
		submitter: submitter,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}

	if s, ok := drafts.Load(ctx); ok {
		c.state = s
		log.Printf("[wizard][usecase] draft restored session_id=%s step=%d", sessionID, s.CurrentStep)
	}
	return c
}

func (c *Controller) SetVehicleYear(ctx context.Context, year int) error {
	return c.mutate(ctx, func(s *entities.WizardState) { s.Vehicle.Year = year })
}

func (c *Controller) SetVehicleMake(ctx context.Context, vehicleMake string) error {
	return c.mutate(ctx, func(s *entities.WizardState) { s.Vehicle.Make = vehicleMake })
}

func (c *Controller) SetVehicleModel(ctx context.Context, model string) error {
	return c.mutate(ctx, func(s *entities.WizardState) { s.Vehicle.Model = model })
}

func (c *Controller) SetVehicleColor(ctx context.Context, color string) error {
	return c.mutate(ctx, func(s *entities.WizardState) { s.Vehicle.Color = color })
}

func (c *Controller) SetVehicleCondition(ctx context.Context, condition entities.VehicleCondition) error {
	return c.mutate(ctx, func(s *entities.WizardState) { s.Vehicle.Condition = condition })
}

// ToggleService adds id to the selection, or removes it when present.
func (c *Controller) ToggleService(ctx context.Context, id string) error {
	return c.mutate(ctx, func(s *entities.WizardState) {
		for i, v := range s.Services {
			if v == id {
				s.Services = append(s.Services[:i:i], s.Services[i+1:]...)
				return
			}
		}
		s.Services = append(s.Services, id)
	})
}

// SetServices replaces the selection. Duplicates are dropped.
func (c *Controller) SetServices(ctx context.Context, ids []string) error {
	return c.mutate(ctx, func(s *entities.WizardState) { s.Services = dedupe(ids) })
}

// SelectPackage picks a bundle. The individual services stay selected so the
// visitor can switch back without losing them.
func (c *Controller) SelectPackage(ctx context.Context, id string) error {
	return c.mutate(ctx, func(s *entities.WizardState) { s.Package = strings.TrimSpace(id) })
}

func (c *Controller) ClearPackage(ctx context.Context) error {
	return c.mutate(ctx, func(s *entities.WizardState) { s.Package = "" })
}

func (c *Controller) SetContactName(ctx context.Context, name string) error {
	return c.mutate(ctx, func(s *entities.WizardState) { s.Contact.Name = name })
}

func (c *Controller) SetContactEmail(ctx context.Context, email string) error {
	return c.mutate(ctx, func(s *entities.WizardState) { s.Contact.Email = email })
}

func (c *Controller) SetContactPhone(ctx context.Context, phone string) error {
	return c.mutate(ctx, func(s *entities.WizardState) { s.Contact.Phone = phone })
}

func (c *Controller) SetPreferredContactMethod(ctx context.Context, method entities.ContactMethod) error {
	return c.mutate(ctx, func(s *entities.WizardState) { s.Contact.PreferredContactMethod = method })
}

func (c *Controller) SetTimeframe(ctx context.Context, tf entities.Timeframe) error {
	return c.mutate(ctx, func(s *entities.WizardState) { s.Contact.Timeframe = tf })
}

func (c *Controller) SetNotes(ctx context.Context, notes string) error {
	return c.mutate(ctx, func(s *entities.WizardState) { s.Contact.Notes = notes })
}

func (c *Controller) mutate(ctx context.Context, apply func(s *entities.WizardState)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardLocked(); err != nil {
		return err
	}
	apply(&c.state)
	c.saveLocked(ctx)
	if c.eager {
		c.errors = c.rules.Step(c.state.CurrentStep, c.state)
	}
	return nil
}

// GoNext runs the active step's gate and advances on success. It is a no-op
// on the last step.
func (c *Controller) GoNext(ctx context.Context) (StepResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardLocked(); err != nil {
		return StepResult{}, err
	}

	step := c.state.CurrentStep
	if step >= entities.LastStep {
		return StepResult{Step: step, Errors: validation.FieldErrors{}}, nil
	}

	errs := c.rules.Step(step, c.state)
	if !errs.Valid() {
		c.errors = errs
		log.Printf("[wizard][usecase] step gate failed session_id=%s step=%d fields=%d", c.sessionID, step, len(errs))
		return StepResult{Step: step, Errors: copyErrors(errs)}, nil
	}

	c.state.CurrentStep++
	c.errors = validation.FieldErrors{}
	c.saveLocked(ctx)
	return StepResult{Advanced: true, Step: c.state.CurrentStep, Errors: validation.FieldErrors{}}, nil
}

// GoPrevious steps back without validation; step 1 is the floor.
func (c *Controller) GoPrevious(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardLocked(); err != nil {
		return err
	}
	if c.state.CurrentStep > entities.FirstStep {
		c.state.CurrentStep--
		c.errors = validation.FieldErrors{}
		c.saveLocked(ctx)
	}
	return nil
}

// Submit validates the whole record and hands it to the submission boundary.
//
// Only one submission can be in flight; a concurrent call returns
// ErrSubmissionInProgress without side effects. On failure the status goes
// to error and back to editing, the draft is kept and SubmitError holds a
// message for the visitor.
func (c *Controller) Submit(ctx context.Context) (entities.EstimateRecord, error) {
	c.mu.Lock()
	if err := c.guardLocked(); err != nil {
		c.mu.Unlock()
		return entities.EstimateRecord{}, err
	}
	if c.state.CurrentStep != entities.LastStep {
		c.mu.Unlock()
		return entities.EstimateRecord{}, ErrNotOnFinalStep
	}
	if errs := c.rules.Record(c.state); !errs.Valid() {
		c.errors = errs
		c.mu.Unlock()
		log.Printf("[wizard][usecase] submit rejected session_id=%s fields=%d", c.sessionID, len(errs))
		return entities.EstimateRecord{}, ErrRecordInvalid
	}

	c.setStatusLocked(entities.WizardStatusSubmitting)
	c.submitErr = ""
	record := entities.EstimateRecord{
		ID:             c.newID(),
		SessionID:      c.sessionID,
		Vehicle:        c.state.Vehicle,
		Services:       append([]string{}, c.state.Services...),
		Package:        c.state.Package,
		Contact:        c.state.Contact,
		EstimatedPrice: pricing.ComputeEstimate(c.catalog, c.state),
		Status:         entities.EstimateStatusPending,
		CreatedAt:      c.now().UTC(),
	}
	c.mu.Unlock()

	log.Printf("[wizard][usecase] submit start session_id=%s estimate_id=%s price=%.2f", c.sessionID, record.ID, record.EstimatedPrice)
	err := c.submitter.Submit(ctx, record)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		log.Printf("[wizard][usecase] submit failed session_id=%s estimate_id=%s err=%v", c.sessionID, record.ID, err)
		c.setStatusLocked(entities.WizardStatusError)
		c.submitErr = SubmitFailureMessage
		c.failed = true
		c.setStatusLocked(entities.WizardStatusEditing)
		return entities.EstimateRecord{}, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	c.setStatusLocked(entities.WizardStatusSubmitted)
	c.record = &record
	c.errors = validation.FieldErrors{}
	if err := c.drafts.Clear(ctx); err != nil {
		log.Printf("[wizard][usecase] draft clear failed session_id=%s err=%v", c.sessionID, err)
	}
	log.Printf("[wizard][usecase] submit success session_id=%s estimate_id=%s", c.sessionID, record.ID)
	return record, nil
}

// Reset dismisses the wizard and starts over empty. It is only allowed once
// the estimate was submitted or after a failed submission. Only a confirmed
// submission clears the draft, so after a failure the stored answers stay in
// the medium and the next mount restores them.
func (c *Controller) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.state.Status == entities.WizardStatusSubmitted:
	case c.state.Status == entities.WizardStatusEditing && c.failed:
		log.Printf("[wizard][usecase] failed submission dismissed, draft kept session_id=%s", c.sessionID)
	default:
		return ErrResetNotAllowed
	}

	from := c.state.Status
	c.state = entities.NewWizardState()
	c.errors = validation.FieldErrors{}
	c.submitErr = ""
	c.failed = false
	c.record = nil
	if from != c.state.Status && c.onStatus != nil {
		c.onStatus(from, c.state.Status)
	}
	return nil
}

// Status returns the current lifecycle status.
func (c *Controller) Status() entities.WizardStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Status
}

// SubmitError returns the message of the last failed submission, if any.
func (c *Controller) SubmitError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitErr
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		SessionID:      c.sessionID,
		State:          c.state.Clone(),
		Errors:         copyErrors(c.errors),
		EstimatedPrice: pricing.ComputeEstimate(c.catalog, c.state),
		Recommended:    pricing.RecommendServices(c.catalog.Services(), c.state.Vehicle),
		SubmitError:    c.submitErr,
	}
	if c.record != nil {
		rec := *c.record
		rec.Services = append([]string{}, c.record.Services...)
		snap.Record = &rec
	}
	return snap
}

func (c *Controller) guardLocked() error {
	switch c.state.Status {
	case entities.WizardStatusSubmitting:
		return ErrSubmissionInProgress
	case entities.WizardStatusSubmitted:
		return ErrAlreadySubmitted
	}
	return nil
}

func (c *Controller) setStatusLocked(to entities.WizardStatus) {
	from := c.state.Status
	c.state.Status = to
	if c.onStatus != nil {
		c.onStatus(from, to)
	}
}

// saveLocked writes the draft. Failures are logged; the in-memory state
// stays authoritative.
func (c *Controller) saveLocked(ctx context.Context) {
	if err := c.drafts.Save(ctx, c.state); err != nil {
		log.Printf("[wizard][usecase] draft save failed session_id=%s err=%v", c.sessionID, err)
	}
}

func copyErrors(in validation.FieldErrors) validation.FieldErrors {
	out := make(validation.FieldErrors, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
