package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"estimate_wizard/internal/domain/entities"
	"estimate_wizard/internal/usecase/interfaces"
)

const (
	// DraftKeyPrefix names the slot a wizard's draft lives in.
	DraftKeyPrefix = "estimate-form-draft"

	draftVersion = 1
)

var errDraftShape = errors.New("draft does not match the expected shape")

// draftPayload is what ends up in the medium. Status is transient and never
// stored.
type draftPayload struct {
	Version     int                  `json:"version"`
	Vehicle     entities.VehicleInfo `json:"vehicle"`
	Services    []string             `json:"services"`
	Package     string               `json:"package,omitempty"`
	Contact     entities.ContactInfo `json:"contact"`
	CurrentStep int                  `json:"current_step"`
}

// DraftStore persists one wizard's in-progress answers in a single named
// slot of a key-value medium.
type DraftStore struct {
	medium interfaces.IDraftMedium
	key    string
}

func NewDraftStore(medium interfaces.IDraftMedium, sessionID string) *DraftStore {
	return &DraftStore{medium: medium, key: DraftKey(sessionID)}
}

// DraftKey returns the slot key for a session.
func DraftKey(sessionID string) string {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return DraftKeyPrefix
	}
	return DraftKeyPrefix + ":" + sessionID
}

func (d *DraftStore) Key() string {
	return d.key
}

// Save overwrites the slot with the given state. The last write wins.
func (d *DraftStore) Save(ctx context.Context, s entities.WizardState) error {
	b, err := json.Marshal(draftPayload{
		Version:     draftVersion,
		Vehicle:     s.Vehicle,
		Services:    s.Services,
		Package:     s.Package,
		Contact:     s.Contact,
		CurrentStep: s.CurrentStep,
	})
	if err != nil {
		return err
	}
	return d.medium.Set(ctx, d.key, string(b))
}

// Load restores the stored draft. A missing, unreadable or stale draft is
// discarded and reported as ok=false; it never surfaces as an error.
func (d *DraftStore) Load(ctx context.Context) (entities.WizardState, bool) {
	raw, ok, err := d.medium.Get(ctx, d.key)
	if err != nil {
		log.Printf("[wizard][draft] load failed key=%s err=%v", d.key, err)
		return entities.WizardState{}, false
	}
	if !ok {
		return entities.WizardState{}, false
	}

	s, err := decodeDraft(raw)
	if err != nil {
		log.Printf("[wizard][draft] discarding draft key=%s err=%v", d.key, err)
		if derr := d.medium.Delete(ctx, d.key); derr != nil {
			log.Printf("[wizard][draft] discard delete failed key=%s err=%v", d.key, derr)
		}
		return entities.WizardState{}, false
	}
	return s, true
}

// Clear removes the draft. Clearing an empty slot is not an error.
func (d *DraftStore) Clear(ctx context.Context) error {
	return d.medium.Delete(ctx, d.key)
}

func decodeDraft(raw string) (entities.WizardState, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()

	var p draftPayload
	if err := dec.Decode(&p); err != nil {
		return entities.WizardState{}, err
	}
	if err := p.check(); err != nil {
		return entities.WizardState{}, err
	}

	s := entities.NewWizardState()
	s.Vehicle = p.Vehicle
	s.Services = dedupe(p.Services)
	s.Package = p.Package
	s.Contact = p.Contact
	s.CurrentStep = p.CurrentStep
	return s, nil
}

func (p draftPayload) check() error {
	if p.Version != draftVersion {
		return errDraftShape
	}
	if p.CurrentStep < entities.FirstStep || p.CurrentStep > entities.LastStep {
		return errDraftShape
	}
	if p.Vehicle.Year < 0 {
		return errDraftShape
	}
	switch p.Vehicle.Condition {
	case "", entities.VehicleConditionExcellent, entities.VehicleConditionGood,
		entities.VehicleConditionFair, entities.VehicleConditionPoor:
	default:
		return errDraftShape
	}
	switch p.Contact.PreferredContactMethod {
	case "", entities.ContactMethodPhone, entities.ContactMethodEmail:
	default:
		return errDraftShape
	}
	switch p.Contact.Timeframe {
	case "", entities.TimeframeASAP, entities.TimeframeWeek, entities.TimeframeMonth, entities.TimeframeFlexible:
	default:
		return errDraftShape
	}
	return nil
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
