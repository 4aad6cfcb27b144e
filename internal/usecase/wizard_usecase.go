package usecase

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"estimate_wizard/internal/domain/catalog"
	"estimate_wizard/internal/domain/entities"
	"estimate_wizard/internal/usecase/interfaces"
	"estimate_wizard/internal/usecase/validation"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

var ErrInvalidSessionID = errors.New("invalid session id")

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

const (
	DefaultMaxSessions    = 10000
	DefaultSessionIdleTTL = 30 * time.Minute
)

// SessionLimits bounds the wizards kept in memory. A wizard that is evicted
// is mounted again from its draft on the next call.
type SessionLimits struct {
	MaxSessions int
	IdleTTL     time.Duration
}

// VehiclePatch carries the step 1 fields the visitor changed. Nil fields are
// left alone.
type VehiclePatch struct {
	Year      *int
	Make      *string
	Model     *string
	Color     *string
	Condition *entities.VehicleCondition
}

type ContactPatch struct {
	Name                   *string
	Email                  *string
	Phone                  *string
	PreferredContactMethod *entities.ContactMethod
	Timeframe              *entities.Timeframe
	Notes                  *string
}

// IWizardUseCase exposes the estimate wizard per browser session.
//
// A session hosts at most one wizard. Every operation mounts the wizard on
// first use, restoring the session's draft when one exists.
type IWizardUseCase interface {
	Mount(ctx context.Context, sessionID string) (Snapshot, error)
	Get(ctx context.Context, sessionID string) (Snapshot, error)
	UpdateVehicle(ctx context.Context, sessionID string, patch VehiclePatch) (Snapshot, error)
	SetServices(ctx context.Context, sessionID string, ids []string) (Snapshot, error)
	ToggleService(ctx context.Context, sessionID, serviceID string) (Snapshot, error)
	SelectPackage(ctx context.Context, sessionID, packageID string) (Snapshot, error)
	UpdateContact(ctx context.Context, sessionID string, patch ContactPatch) (Snapshot, error)
	Next(ctx context.Context, sessionID string) (StepResult, Snapshot, error)
	Previous(ctx context.Context, sessionID string) (Snapshot, error)
	Submit(ctx context.Context, sessionID string) (Snapshot, error)
	Reset(ctx context.Context, sessionID string) (Snapshot, error)
}

type WizardUseCase struct {
	mu         sync.Mutex
	wizards    *expirable.LRU[string, *Controller]
	submitting map[string]*pinnedWizard
	mounts     singleflight.Group

	catalog   *catalog.Catalog
	rules     *validation.Rules
	drafts    interfaces.IDraftMedium
	submitter interfaces.IEstimateSubmitter
	opts      []ControllerOption
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(
	cat *catalog.Catalog,
	rules *validation.Rules,
	drafts interfaces.IDraftMedium,
	submitter interfaces.IEstimateSubmitter,
	limits SessionLimits,
	opts ...ControllerOption,
) *WizardUseCase {
	if limits.MaxSessions <= 0 {
		limits.MaxSessions = DefaultMaxSessions
	}
	if limits.IdleTTL <= 0 {
		limits.IdleTTL = DefaultSessionIdleTTL
	}
	return &WizardUseCase{
		wizards:    expirable.NewLRU[string, *Controller](limits.MaxSessions, nil, limits.IdleTTL),
		submitting: make(map[string]*pinnedWizard),
		catalog:    cat,
		rules:      rules,
		drafts:     drafts,
		submitter:  submitter,
		opts:       opts,
	}
}

// Mount returns the session's wizard, creating it if needed. An empty session
// id starts a new session.
func (u *WizardUseCase) Mount(ctx context.Context, sessionID string) (Snapshot, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	c, err := u.controller(ctx, sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	return c.Snapshot(), nil
}

func (u *WizardUseCase) Get(ctx context.Context, sessionID string) (Snapshot, error) {
	c, err := u.controller(ctx, sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	return c.Snapshot(), nil
}

func (u *WizardUseCase) UpdateVehicle(ctx context.Context, sessionID string, patch VehiclePatch) (Snapshot, error) {
	steps := []func(c *Controller) error{}
	if patch.Year != nil {
		steps = append(steps, func(c *Controller) error { return c.SetVehicleYear(ctx, *patch.Year) })
	}
	if patch.Make != nil {
		steps = append(steps, func(c *Controller) error { return c.SetVehicleMake(ctx, *patch.Make) })
	}
	if patch.Model != nil {
		steps = append(steps, func(c *Controller) error { return c.SetVehicleModel(ctx, *patch.Model) })
	}
	if patch.Color != nil {
		steps = append(steps, func(c *Controller) error { return c.SetVehicleColor(ctx, *patch.Color) })
	}
	if patch.Condition != nil {
		steps = append(steps, func(c *Controller) error { return c.SetVehicleCondition(ctx, *patch.Condition) })
	}
	return u.apply(ctx, sessionID, steps...)
}

func (u *WizardUseCase) SetServices(ctx context.Context, sessionID string, ids []string) (Snapshot, error) {
	return u.apply(ctx, sessionID, func(c *Controller) error {
		return c.SetServices(ctx, ids)
	})
}

func (u *WizardUseCase) ToggleService(ctx context.Context, sessionID, serviceID string) (Snapshot, error) {
	return u.apply(ctx, sessionID, func(c *Controller) error {
		return c.ToggleService(ctx, strings.TrimSpace(serviceID))
	})
}

// SelectPackage picks a bundle; an empty id clears the selection.
func (u *WizardUseCase) SelectPackage(ctx context.Context, sessionID, packageID string) (Snapshot, error) {
	return u.apply(ctx, sessionID, func(c *Controller) error {
		if strings.TrimSpace(packageID) == "" {
			return c.ClearPackage(ctx)
		}
		return c.SelectPackage(ctx, packageID)
	})
}

func (u *WizardUseCase) UpdateContact(ctx context.Context, sessionID string, patch ContactPatch) (Snapshot, error) {
	steps := []func(c *Controller) error{}
	if patch.Name != nil {
		steps = append(steps, func(c *Controller) error { return c.SetContactName(ctx, *patch.Name) })
	}
	if patch.Email != nil {
		steps = append(steps, func(c *Controller) error { return c.SetContactEmail(ctx, *patch.Email) })
	}
	if patch.Phone != nil {
		steps = append(steps, func(c *Controller) error { return c.SetContactPhone(ctx, *patch.Phone) })
	}
	if patch.PreferredContactMethod != nil {
		steps = append(steps, func(c *Controller) error { return c.SetPreferredContactMethod(ctx, *patch.PreferredContactMethod) })
	}
	if patch.Timeframe != nil {
		steps = append(steps, func(c *Controller) error { return c.SetTimeframe(ctx, *patch.Timeframe) })
	}
	if patch.Notes != nil {
		steps = append(steps, func(c *Controller) error { return c.SetNotes(ctx, *patch.Notes) })
	}
	return u.apply(ctx, sessionID, steps...)
}

func (u *WizardUseCase) Next(ctx context.Context, sessionID string) (StepResult, Snapshot, error) {
	c, err := u.controller(ctx, sessionID)
	if err != nil {
		return StepResult{}, Snapshot{}, err
	}
	res, err := c.GoNext(ctx)
	if err != nil {
		return StepResult{}, Snapshot{}, err
	}
	return res, c.Snapshot(), nil
}

func (u *WizardUseCase) Previous(ctx context.Context, sessionID string) (Snapshot, error) {
	return u.apply(ctx, sessionID, func(c *Controller) error {
		return c.GoPrevious(ctx)
	})
}

// Submit returns the snapshot even when the boundary failed, so the caller
// can render SubmitError alongside the preserved answers.
func (u *WizardUseCase) Submit(ctx context.Context, sessionID string) (Snapshot, error) {
	sessionID = strings.TrimSpace(sessionID)
	c, err := u.controller(ctx, sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	c = u.hold(sessionID, c)
	defer u.release(sessionID)

	_, err = c.Submit(ctx)
	return c.Snapshot(), err
}

// Reset dismisses the wizard and drops it from memory. The next call mounts
// the session again from whatever draft is left.
func (u *WizardUseCase) Reset(ctx context.Context, sessionID string) (Snapshot, error) {
	sessionID = strings.TrimSpace(sessionID)
	snap, err := u.apply(ctx, sessionID, func(c *Controller) error {
		return c.Reset(ctx)
	})
	if err != nil {
		return snap, err
	}
	u.evict(sessionID)
	return snap, nil
}

// apply runs the setters in order and stops at the first rejection.
func (u *WizardUseCase) apply(ctx context.Context, sessionID string, steps ...func(c *Controller) error) (Snapshot, error) {
	c, err := u.controller(ctx, sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	for _, step := range steps {
		if err := step(c); err != nil {
			return Snapshot{}, err
		}
	}
	return c.Snapshot(), nil
}

func (u *WizardUseCase) controller(ctx context.Context, sessionID string) (*Controller, error) {
	sessionID = strings.TrimSpace(sessionID)
	if !sessionIDPattern.MatchString(sessionID) {
		return nil, ErrInvalidSessionID
	}
	if c, ok := u.lookup(sessionID); ok {
		return c, nil
	}

	// The draft load is a network call for Redis and DynamoDB, so it runs
	// outside u.mu. Concurrent first calls for one session share a mount.
	v, _, _ := u.mounts.Do(sessionID, func() (any, error) {
		if c, ok := u.lookup(sessionID); ok {
			return c, nil
		}
		c := NewController(context.WithoutCancel(ctx), sessionID, u.catalog, u.rules, NewDraftStore(u.drafts, sessionID), u.submitter, u.opts...)

		u.mu.Lock()
		defer u.mu.Unlock()
		if p, ok := u.submitting[sessionID]; ok {
			return p.c, nil
		}
		if existing, ok := u.wizards.Peek(sessionID); ok {
			return existing, nil
		}
		u.wizards.Add(sessionID, c)
		log.Printf("[wizard][usecase] mounted session_id=%s", sessionID)
		return c, nil
	})
	return v.(*Controller), nil
}

// lookup returns the live wizard for a session and pushes back its idle
// deadline.
func (u *WizardUseCase) lookup(sessionID string) (*Controller, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if p, ok := u.submitting[sessionID]; ok {
		return p.c, true
	}
	c, ok := u.wizards.Get(sessionID)
	if ok {
		u.wizards.Add(sessionID, c)
	}
	return c, ok
}

// pinnedWizard keeps a wizard out of eviction while a submission runs, so a
// session can never be mounted twice and submit twice.
type pinnedWizard struct {
	c    *Controller
	refs int
}

func (u *WizardUseCase) hold(sessionID string, c *Controller) *Controller {
	u.mu.Lock()
	defer u.mu.Unlock()

	if p, ok := u.submitting[sessionID]; ok {
		p.refs++
		return p.c
	}
	if existing, ok := u.wizards.Peek(sessionID); ok {
		c = existing
	} else {
		u.wizards.Add(sessionID, c)
	}
	u.submitting[sessionID] = &pinnedWizard{c: c, refs: 1}
	return c
}

func (u *WizardUseCase) release(sessionID string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	p, ok := u.submitting[sessionID]
	if !ok {
		return
	}
	p.refs--
	if p.refs > 0 {
		return
	}
	delete(u.submitting, sessionID)
	u.wizards.Add(sessionID, p.c)
}

func (u *WizardUseCase) evict(sessionID string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.submitting[sessionID]; ok {
		return
	}
	if u.wizards.Remove(sessionID) {
		log.Printf("[wizard][usecase] evicted session_id=%s", sessionID)
	}
}

// Sessions reports how many wizards are held in memory.
func (u *WizardUseCase) Sessions() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.wizards.Len()
}
