package contact

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FACorreiaa/northern-oak/internal/app/models"
)

// Outcome labels used for logging and metrics.
const (
	OutcomeInvalid  = "invalid"
	OutcomeAccepted = "accepted"
	OutcomeFailed   = "failed"
)

// Outcome is the result of a submit attempt.
type Outcome struct {
	State        State
	Label        string
	Reference    string
	Notification models.Notification
	Err          error
}

// Controller runs the submit step of the form lifecycle.
type Controller struct {
	submitter Submitter
	logger    *zap.Logger
	now       func() time.Time
}

func NewController(submitter Submitter, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{submitter: submitter, logger: logger, now: time.Now}
}

// Submit validates f, moves it through submitting and ends in submitted on
// success or editing on validation or delivery failure.
func (c *Controller) Submit(ctx context.Context, f *Form) Outcome {
	if err := f.begin(); err != nil {
		var verr *ValidationError
		msg := msgRequiredFields
		if errors.As(err, &verr) {
			msg = verr.Message()
			c.logger.Info("Form validation failed",
				zap.String("variant", string(f.Variant)),
				zap.Strings("missing", verr.Missing),
			)
		}
		return Outcome{
			State:        f.State(),
			Label:        OutcomeInvalid,
			Notification: models.Notification{Kind: models.NotifyError, Message: msg},
			Err:          err,
		}
	}

	sub := Submission{
		Reference:   uuid.NewString(),
		Variant:     f.Variant,
		SubmittedAt: c.now().UTC(),
		Fields:      f.Fields,
	}
	c.logger.Info("Form submitting",
		zap.String("reference", sub.Reference),
		zap.String("variant", string(f.Variant)),
		zap.Bool("newsletter", f.Fields.Newsletter),
	)

	res, err := c.submitter.Submit(ctx, sub)
	if err != nil {
		f.finish(false)
		c.logger.Error("Form submission failed",
			zap.String("reference", sub.Reference),
			zap.Error(err),
		)
		return Outcome{
			State:        f.State(),
			Label:        OutcomeFailed,
			Reference:    sub.Reference,
			Notification: models.Notification{Kind: models.NotifyError, Message: msgFailure},
			Err:          err,
		}
	}

	f.finish(true)
	c.logger.Info("Form submitted",
		zap.String("reference", res.Reference),
		zap.String("variant", string(f.Variant)),
	)
	return Outcome{
		State:        f.State(),
		Label:        OutcomeAccepted,
		Reference:    res.Reference,
		Notification: models.Notification{Kind: models.NotifySuccess, Message: SuccessMessage(f.Variant)},
	}
}
