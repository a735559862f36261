package contact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/northern-oak/internal/app/models"
)

func janeDoe() models.ContactFields {
	return models.ContactFields{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello",
	}
}

func TestFormMissing(t *testing.T) {
	tests := []struct {
		name    string
		variant models.FormVariant
		fields  models.ContactFields
		want    []string
	}{
		{
			name:    "empty contact form",
			variant: models.VariantContact,
			want:    []string{FieldName, FieldEmail, FieldMessage},
		},
		{
			name:    "empty quote form also needs a project type",
			variant: models.VariantQuote,
			want:    []string{FieldName, FieldEmail, FieldMessage, FieldProjectType},
		},
		{
			name:    "complete contact form",
			variant: models.VariantContact,
			fields:  janeDoe(),
		},
		{
			name:    "quote without project type",
			variant: models.VariantQuote,
			fields:  janeDoe(),
			want:    []string{FieldProjectType},
		},
		{
			name:    "whitespace counts as empty",
			variant: models.VariantContact,
			fields:  models.ContactFields{Name: "  ", Email: "jane@example.com", Message: "\t"},
			want:    []string{FieldName, FieldMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewForm(tt.variant)
			require.NoError(t, f.Edit(tt.fields))
			assert.Equal(t, tt.want, f.Missing())
			assert.Equal(t, len(tt.want) == 0, f.CanSubmit())
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	f := NewForm(models.VariantQuote)
	err := f.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Please fill in all required fields.", verr.Message())
	assert.True(t, errors.Is(err, models.ErrValidation))

	require.NoError(t, f.Edit(janeDoe()))
	err = f.Validate()
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Please select a project type for your quote.", verr.Message())

	fields := janeDoe()
	fields.ProjectType = "Bespoke Joinery"
	require.NoError(t, f.Edit(fields))
	assert.NoError(t, f.Validate())
}

func TestEditTrimsValues(t *testing.T) {
	f := NewForm(models.VariantContact)
	require.NoError(t, f.Edit(models.ContactFields{Name: "  Jane Doe ", Email: " jane@example.com"}))
	assert.Equal(t, "Jane Doe", f.Fields.Name)
	assert.Equal(t, "jane@example.com", f.Fields.Email)
}

func TestReset(t *testing.T) {
	t.Run("only a submitted form can be reset", func(t *testing.T) {
		f := NewForm(models.VariantContact)
		err := f.Reset()
		assert.True(t, errors.Is(err, models.ErrInvalidState))
	})

	t.Run("reset clears every field and returns to editing", func(t *testing.T) {
		f := NewForm(models.VariantQuote)
		fields := janeDoe()
		fields.Phone = "01423 123456"
		fields.ProjectType = "Bespoke Joinery"
		fields.Timeline = "3-6 months"
		fields.Budget = "Prefer to discuss"
		fields.Location = "Leeds"
		fields.Newsletter = true
		require.NoError(t, f.Edit(fields))
		require.NoError(t, f.begin())
		f.finish(true)
		require.Equal(t, StateSubmitted, f.State())

		require.NoError(t, f.Reset())
		assert.Equal(t, StateEditing, f.State())
		assert.Equal(t, models.ContactFields{}, f.Fields)
	})

	t.Run("a restored confirmation can be reset", func(t *testing.T) {
		f := Submitted(models.VariantContact)
		require.NoError(t, f.Reset())
		assert.Equal(t, StateEditing, f.State())
	})
}

func TestEditRequiresEditingState(t *testing.T) {
	f := Submitted(models.VariantContact)
	err := f.Edit(janeDoe())
	assert.True(t, errors.Is(err, models.ErrInvalidState))
}

func TestParseFormVariant(t *testing.T) {
	assert.Equal(t, models.VariantQuote, models.ParseFormVariant("quote"))
	assert.Equal(t, models.VariantQuote, models.ParseFormVariant(" Quote "))
	assert.Equal(t, models.VariantContact, models.ParseFormVariant("contact"))
	assert.Equal(t, models.VariantContact, models.ParseFormVariant("brochure"))
	assert.Equal(t, models.VariantContact, models.ParseFormVariant(""))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "editing", StateEditing.String())
	assert.Equal(t, "submitting", StateSubmitting.String())
	assert.Equal(t, "submitted", StateSubmitted.String())
	assert.Equal(t, "State(9)", State(9).String())
}
