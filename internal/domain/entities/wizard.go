package entities

// WizardStatus is the lifecycle of a single estimate wizard.
//
// Transitions:
//   - editing -> submitting (Submit with a valid record on step 4)
//   - submitting -> submitted (boundary acknowledged)
//   - submitting -> error -> editing (boundary failed, draft retained)
type WizardStatus string

const (
	WizardStatusEditing    WizardStatus = "editing"
	WizardStatusSubmitting WizardStatus = "submitting"
	WizardStatusSubmitted  WizardStatus = "submitted"
	WizardStatusError      WizardStatus = "error"
)

const (
	FirstStep = 1
	LastStep  = 4
)

// VehicleCondition is the self-reported state of the vehicle.
type VehicleCondition string

const (
	VehicleConditionExcellent VehicleCondition = "excellent"
	VehicleConditionGood      VehicleCondition = "good"
	VehicleConditionFair      VehicleCondition = "fair"
	VehicleConditionPoor      VehicleCondition = "poor"
)

type ContactMethod string

const (
	ContactMethodPhone ContactMethod = "phone"
	ContactMethodEmail ContactMethod = "email"
)

type Timeframe string

const (
	TimeframeASAP     Timeframe = "asap"
	TimeframeWeek     Timeframe = "week"
	TimeframeMonth    Timeframe = "month"
	TimeframeFlexible Timeframe = "flexible"
)

// VehicleInfo is filled in on step 1. Zero values mean "not answered yet".
type VehicleInfo struct {
	Year      int              `json:"year,omitempty"`
	Make      string           `json:"make,omitempty"`
	Model     string           `json:"model,omitempty"`
	Color     string           `json:"color,omitempty"`
	Condition VehicleCondition `json:"condition,omitempty"`
}

// ContactInfo is filled in on step 4.
type ContactInfo struct {
	Name                   string        `json:"name,omitempty"`
	Email                  string        `json:"email,omitempty"`
	Phone                  string        `json:"phone,omitempty"`
	PreferredContactMethod ContactMethod `json:"preferred_contact_method,omitempty"`
	Timeframe              Timeframe     `json:"timeframe,omitempty"`
	Notes                  string        `json:"notes,omitempty"`
}

// WizardState is the whole in-progress form.
//
// Services and Package are both retained when the visitor switches between
// individual services and a bundle; pricing decides which one wins.
type WizardState struct {
	Vehicle     VehicleInfo  `json:"vehicle"`
	Services    []string     `json:"services"`
	Package     string       `json:"package,omitempty"`
	Contact     ContactInfo  `json:"contact"`
	CurrentStep int          `json:"current_step"`
	Status      WizardStatus `json:"status"`
}

// NewWizardState returns an empty wizard positioned on the first step.
func NewWizardState() WizardState {
	return WizardState{
		Services:    []string{},
		CurrentStep: FirstStep,
		Status:      WizardStatusEditing,
	}
}

// Clone returns a deep copy so callers never share the services slice.
func (s WizardState) Clone() WizardState {
	out := s
	out.Services = append([]string{}, s.Services...)
	return out
}

// HasService reports whether id is part of the selection.
func (s WizardState) HasService(id string) bool {
	for _, v := range s.Services {
		if v == id {
			return true
		}
	}
	return false
}
