package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Status is the outcome shown by the form's status indicator
type Status string

const (
	StatusIdle    Status = "idle"
	StatusInvalid Status = "invalid"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const (
	SuccessToast = "Message sent successfully! I'll get back to you soon."
	ErrorToast   = "Failed to send message. Please try again later."
)

// Recorder keeps an anonymous trail of submission outcomes
type Recorder interface {
	RecordContactAttempt(ctx context.Context, id, subject, status string, at time.Time) error
}

// Result describes what happened to one submission
type Result struct {
	ID     string      `json:"id,omitempty"`
	Status Status      `json:"status"`
	Toast  string      `json:"toast,omitempty"`
	Errors FieldErrors `json:"errors,omitempty"`
}

type Service struct {
	submitter Submitter
	recorder  Recorder
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires a submitter and an optional recorder
func NewService(submitter Submitter, recorder Recorder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		submitter: submitter,
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit validates f and, only when valid, hands it to the submitter
func (s *Service) Submit(ctx context.Context, f FormData) Result {
	if errs := Validate(f); len(errs) > 0 {
		return Result{Status: StatusInvalid, Errors: errs}
	}

	id := uuid.NewString()
	result := Result{ID: id, Status: StatusSuccess, Toast: SuccessToast}

	if err := s.submitter.Submit(ctx, f); err != nil {
		s.logger.Warn("contact submission failed", "id", id, "subject", f.Subject, "error", err)
		result = Result{ID: id, Status: StatusError, Toast: ErrorToast}
	} else {
		s.logger.Info("contact submission delivered", "id", id, "subject", f.Subject)
	}

	if s.recorder != nil {
		// the request may already be gone; the record should still land
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := s.recorder.RecordContactAttempt(rctx, id, f.Subject, string(result.Status), s.now()); err != nil {
			s.logger.Error("failed to record contact attempt", "id", id, "error", err)
		}
	}

	return result
}
