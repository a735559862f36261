package contact

import (
	"fmt"
	"strings"

	"github.com/FACorreiaa/northern-oak/internal/app/models"
)

// State is the position of a form in its lifecycle:
// editing -> submitting -> submitted -> editing.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldMessage     = "message"
	FieldProjectType = "projectType"
)

const (
	msgRequiredFields = "Please fill in all required fields."
	msgProjectType    = "Please select a project type for your quote."
	msgFailure        = "Something went wrong. Please try again or call us directly."
)

// ValidationError lists the required fields that were left empty.
type ValidationError struct {
	Variant models.FormVariant
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s form missing required fields: %s", e.Variant, strings.Join(e.Missing, ", "))
}

func (e *ValidationError) Unwrap() error { return models.ErrValidation }

// Message is the copy shown to the visitor. A missing project type gets its
// own prompt only when everything else is filled in.
func (e *ValidationError) Message() string {
	for _, f := range e.Missing {
		if f != FieldProjectType {
			return msgRequiredFields
		}
	}
	return msgProjectType
}

// Form is one visitor's contact or quote form.
type Form struct {
	Variant models.FormVariant
	Fields  models.ContactFields
	state   State
}

// NewForm returns an empty form in the editing state.
func NewForm(variant models.FormVariant) *Form {
	return &Form{Variant: variant}
}

// Submitted rebuilds a form that has already been sent, so its confirmation
// can be shown again.
func Submitted(variant models.FormVariant) *Form {
	return &Form{Variant: variant, state: StateSubmitted}
}

// Edit replaces the field values. It is only allowed while editing.
func (f *Form) Edit(fields models.ContactFields) error {
	if f.state != StateEditing {
		return fmt.Errorf("%w: cannot edit a %s form", models.ErrInvalidState, f.state)
	}
	f.Fields = normalize(fields)
	return nil
}

func (f *Form) State() State { return f.state }

// Missing returns the empty required fields in display order.
func (f *Form) Missing() []string {
	var missing []string
	if strings.TrimSpace(f.Fields.Name) == "" {
		missing = append(missing, FieldName)
	}
	if strings.TrimSpace(f.Fields.Email) == "" {
		missing = append(missing, FieldEmail)
	}
	if strings.TrimSpace(f.Fields.Message) == "" {
		missing = append(missing, FieldMessage)
	}
	if f.Variant == models.VariantQuote && strings.TrimSpace(f.Fields.ProjectType) == "" {
		missing = append(missing, FieldProjectType)
	}
	return missing
}

// CanSubmit drives the enabled state of the submit button.
func (f *Form) CanSubmit() bool {
	return f.state == StateEditing && len(f.Missing()) == 0
}

// Validate returns a *ValidationError when required fields are empty.
func (f *Form) Validate() error {
	if missing := f.Missing(); len(missing) > 0 {
		return &ValidationError{Variant: f.Variant, Missing: missing}
	}
	return nil
}

// Reset is the "send another" action: every field goes back to empty and
// the form returns to editing.
func (f *Form) Reset() error {
	if f.state != StateSubmitted {
		return fmt.Errorf("%w: cannot reset a %s form", models.ErrInvalidState, f.state)
	}
	f.Fields = models.ContactFields{}
	f.state = StateEditing
	return nil
}

func (f *Form) begin() error {
	if f.state != StateEditing {
		return fmt.Errorf("%w: cannot submit a %s form", models.ErrInvalidState, f.state)
	}
	if err := f.Validate(); err != nil {
		return err
	}
	f.state = StateSubmitting
	return nil
}

func (f *Form) finish(ok bool) {
	if f.state != StateSubmitting {
		return
	}
	if ok {
		f.state = StateSubmitted
		return
	}
	f.state = StateEditing
}

// SuccessMessage is the toast shown after a successful submission.
func SuccessMessage(v models.FormVariant) string {
	if v == models.VariantQuote {
		return "Quote request submitted successfully! We'll be in touch within 24 hours."
	}
	return "Message sent successfully! We'll get back to you soon."
}

func normalize(in models.ContactFields) models.ContactFields {
	return models.ContactFields{
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		ProjectType: strings.TrimSpace(in.ProjectType),
		Timeline:    strings.TrimSpace(in.Timeline),
		Budget:      strings.TrimSpace(in.Budget),
		Location:    strings.TrimSpace(in.Location),
		Message:     strings.TrimSpace(in.Message),
		Newsletter:  in.Newsletter,
	}
}
