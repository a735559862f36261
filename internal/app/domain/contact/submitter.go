package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/FACorreiaa/northern-oak/internal/app/models"
)

// DefaultSubmitDelay stands in for network latency on the simulated path.
const DefaultSubmitDelay = 1500 * time.Millisecond

// Submission is what crosses the submission boundary.
type Submission struct {
	Reference   string               `json:"reference"`
	Variant     models.FormVariant   `json:"variant"`
	SubmittedAt time.Time            `json:"submittedAt"`
	Fields      models.ContactFields `json:"fields"`
}

// Result describes an accepted submission.
type Result struct {
	Reference  string
	AcceptedAt time.Time
}

// Submitter delivers a form. A non-nil error means the submission failed
// and the form goes back to editing.
type Submitter interface {
	Submit(ctx context.Context, s Submission) (Result, error)
}

// SimulatedSubmitter waits for Delay and accepts everything. The only way it
// fails is a cancelled context.
type SimulatedSubmitter struct {
	Delay  time.Duration
	Logger *zap.Logger
}

func NewSimulatedSubmitter(delay time.Duration, logger *zap.Logger) *SimulatedSubmitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulatedSubmitter{Delay: delay, Logger: logger}
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, sub Submission) (Result, error) {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Result{}, fmt.Errorf("%w: %v", models.ErrSubmission, ctx.Err())
	case <-timer.C:
	}

	s.Logger.Info("Simulated form delivery",
		zap.String("reference", sub.Reference),
		zap.String("variant", string(sub.Variant)),
	)
	return Result{Reference: sub.Reference, AcceptedAt: time.Now().UTC()}, nil
}

// WebhookSubmitter posts submissions as JSON to an HTTP endpoint. Transport
// errors and 5xx responses are retried; any final non-2xx is a failure.
type WebhookSubmitter struct {
	client *resty.Client
	url    string
	logger *zap.Logger
}

func NewWebhookSubmitter(url string, timeout time.Duration, retries int, logger *zap.Logger) *WebhookSubmitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(250*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		SetHeader("Content-Type", "application/json").
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})
	return &WebhookSubmitter{client: client, url: url, logger: logger}
}

func (w *WebhookSubmitter) Submit(ctx context.Context, sub Submission) (Result, error) {
	resp, err := w.client.R().
		SetContext(ctx).
		SetBody(sub).
		Post(w.url)
	if err != nil {
		w.logger.Error("Form webhook request failed",
			zap.String("reference", sub.Reference),
			zap.Error(err),
		)
		return Result{}, fmt.Errorf("%w: %v", models.ErrSubmission, err)
	}
	if !resp.IsSuccess() {
		w.logger.Warn("Form webhook rejected submission",
			zap.String("reference", sub.Reference),
			zap.Int("status", resp.StatusCode()),
		)
		return Result{}, fmt.Errorf("%w: webhook returned %d", models.ErrSubmission, resp.StatusCode())
	}

	w.logger.Info("Form delivered to webhook",
		zap.String("reference", sub.Reference),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("elapsed", resp.Time()),
	)
	return Result{Reference: sub.Reference, AcceptedAt: time.Now().UTC()}, nil
}
