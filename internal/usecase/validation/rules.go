package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"

	"estimate_wizard/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

const (
	MinVehicleYear = 1990

	// KeyServices carries the cross-field "at least one service" error. It is
	// not attached to a single input.
	KeyServices = "services"

	minPhoneDigits = 10
)

var phonePattern = regexp.MustCompile(`^\+?[0-9\s\-().]{10,}$`)

// FieldErrors maps a field name to a user-facing message. An empty map means
// the input is valid.
type FieldErrors map[string]string

func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

func (e FieldErrors) merge(other FieldErrors) {
	for k, v := range other {
		if _, ok := e[k]; !ok {
			e[k] = v
		}
	}
}

type vehicleSchema struct {
	Year      int    `json:"year" validate:"required,vehicleyear"`
	Make      string `json:"make" validate:"required,max=50"`
	Model     string `json:"model" validate:"required,max=50"`
	Color     string `json:"color" validate:"required,max=30"`
	Condition string `json:"condition" validate:"required,oneof=excellent good fair poor"`
}

type servicesSchema struct {
	Services []string `json:"services" validate:"unique,dive,required,max=64"`
}

type contactSchema struct {
	Name                   string `json:"name" validate:"required,min=2,max=100"`
	Email                  string `json:"email" validate:"required,email"`
	Phone                  string `json:"phone" validate:"required,phone"`
	PreferredContactMethod string `json:"preferred_contact_method" validate:"required,oneof=phone email"`
	Timeframe              string `json:"timeframe" validate:"required,oneof=asap week month flexible"`
	Notes                  string `json:"notes"`
}

var labels = map[string]string{
	"year":                     "Year",
	"make":                     "Make",
	"model":                    "Model",
	"color":                    "Color",
	"condition":                "Condition",
	"services":                 "Services",
	"name":                     "Name",
	"email":                    "Email",
	"phone":                    "Phone",
	"preferred_contact_method": "Preferred contact method",
	"timeframe":                "Timeframe",
}

// Rules holds one schema per wizard step. Methods never fail on user input;
// invalid input comes back as FieldErrors.
type Rules struct {
	validate *validator.Validate
	now      func() time.Time
}

type Option func(*Rules)

// WithClock overrides the clock used for the vehicle year upper bound.
func WithClock(now func() time.Time) Option {
	return func(r *Rules) {
		if now != nil {
			r.now = now
		}
	}
}

// New builds the rule set. It panics if a schema cannot be registered.
func New(opts ...Option) *Rules {
	r := &Rules{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := r.validate.RegisterValidation("vehicleyear", r.validVehicleYear); err != nil {
		panic(fmt.Sprintf("register vehicleyear: %v", err))
	}
	if err := r.validate.RegisterValidation("phone", validPhone); err != nil {
		panic(fmt.Sprintf("register phone: %v", err))
	}
	return r
}

// MaxVehicleYear is next year's model year.
func (r *Rules) MaxVehicleYear() int {
	return r.now().Year() + 1
}

func (r *Rules) validVehicleYear(fl validator.FieldLevel) bool {
	y := int(fl.Field().Int())
	return y >= MinVehicleYear && y <= r.MaxVehicleYear()
}

func validPhone(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !phonePattern.MatchString(s) {
		return false
	}
	digits := 0
	for _, ch := range s {
		if unicode.IsDigit(ch) {
			digits++
		}
	}
	return digits >= minPhoneDigits
}

// Step runs the gate of the given step. Step 3 (package) has no rules.
func (r *Rules) Step(step int, s entities.WizardState) FieldErrors {
	switch step {
	case 1:
		return r.Vehicle(s.Vehicle)
	case 2:
		return r.Services(s.Services)
	case 3:
		return FieldErrors{}
	case 4:
		return r.Contact(s.Contact)
	default:
		panic(fmt.Sprintf("validation: unknown step %d", step))
	}
}

// Record validates every step at once. It is the final guard before a
// submission.
func (r *Rules) Record(s entities.WizardState) FieldErrors {
	out := FieldErrors{}
	for step := entities.FirstStep; step <= entities.LastStep; step++ {
		out.merge(r.Step(step, s))
	}
	return out
}

func (r *Rules) Vehicle(v entities.VehicleInfo) FieldErrors {
	return r.check(vehicleSchema{
		Year:      v.Year,
		Make:      strings.TrimSpace(v.Make),
		Model:     strings.TrimSpace(v.Model),
		Color:     strings.TrimSpace(v.Color),
		Condition: string(v.Condition),
	})
}

// Services checks the per-field schema first and then the cross-field rule
// that at least one service is selected.
func (r *Rules) Services(ids []string) FieldErrors {
	out := r.check(servicesSchema{Services: ids})
	if !out.Valid() {
		return out
	}
	if len(ids) == 0 {
		out[KeyServices] = "Please select at least one service"
	}
	return out
}

func (r *Rules) Contact(c entities.ContactInfo) FieldErrors {
	return r.check(contactSchema{
		Name:                   strings.TrimSpace(c.Name),
		Email:                  strings.TrimSpace(c.Email),
		Phone:                  strings.TrimSpace(c.Phone),
		PreferredContactMethod: string(c.PreferredContactMethod),
		Timeframe:              string(c.Timeframe),
		Notes:                  c.Notes,
	})
}

func (r *Rules) check(schema any) FieldErrors {
	out := FieldErrors{}
	err := r.validate.Struct(schema)
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: the schema itself is wrong.
		panic(fmt.Sprintf("validation: %v", err))
	}
	for _, fe := range verrs {
		key := fieldKey(fe)
		if _, ok := out[key]; ok {
			continue
		}
		out[key] = r.message(key, fe)
	}
	return out
}

// fieldKey strips slice indexes so every element error lands on its group.
func fieldKey(fe validator.FieldError) string {
	key := fe.Field()
	if i := strings.IndexByte(key, '['); i >= 0 {
		key = key[:i]
	}
	return key
}

func (r *Rules) message(key string, fe validator.FieldError) string {
	label := labels[key]
	if label == "" {
		label = key
	}
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return "Please enter a valid email address"
	case "phone":
		return "Please enter a valid phone number"
	case "vehicleyear":
		return fmt.Sprintf("Year must be between %d and %d", MinVehicleYear, r.MaxVehicleYear())
	case "unique":
		return label + " must not contain duplicates"
	default:
		return label + " is invalid"
	}
}
