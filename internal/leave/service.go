package leave

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/leavedesk/leavedesk/internal/verify"
)

// Lookup outcomes reported to the Recorder.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Finder is the read side of the record store.
type Finder interface {
	FindOne(serviceCode, idNumber string) (Record, bool)
	ListAll() []PublicRecord
}

// Verifier checks a bot-verification token for a caller address.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// Recorder receives one outcome per lookup.
type Recorder interface {
	ObserveLookup(outcome string)
}

// Stage inspects a lookup request before it reaches the store. Returning an
// error rejects the request.
type Stage func(ctx context.Context, req *LookupRequest) error

// Pipeline runs stages in order and stops at the first rejection.
type Pipeline []Stage

// Run executes every stage.
func (p Pipeline) Run(ctx context.Context, req *LookupRequest) error {
	for _, stage := range p {
		if err := stage(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

// ServiceParams groups Service dependencies.
type ServiceParams struct {
	Logger    *slog.Logger
	Store     Finder
	Validator *Validator
	Mode      verify.Mode
	Verifier  Verifier
	Recorder  Recorder
}

// Service orchestrates validation, verification and lookup.
type Service struct {
	logger   *slog.Logger
	store    Finder
	pipeline Pipeline
	recorder Recorder
}

// NewService composes the request pipeline from the verification mode.
func NewService(params ServiceParams) *Service {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}
	validator := params.Validator
	if validator == nil {
		validator = NewValidator()
	}
	s := &Service{
		logger:   logger,
		store:    params.Store,
		recorder: params.Recorder,
	}
	s.pipeline = Pipeline{validateStage(validator)}
	if params.Mode.IsEnabled() {
		s.pipeline = append(s.pipeline, verifyStage(params.Verifier, logger))
	}
	return s
}

func validateStage(v *Validator) Stage {
	return func(_ context.Context, req *LookupRequest) error {
		return v.Validate(*req)
	}
}

func verifyStage(v Verifier, logger *slog.Logger) Stage {
	return func(ctx context.Context, req *LookupRequest) error {
		var err error
		if v == nil {
			err = verify.ErrUnavailable
		} else {
			err = v.Verify(ctx, req.CaptchaToken, req.RemoteIP)
		}
		if err == nil {
			return nil
		}
		logger.Warn("bot verification failed",
			slog.Bool("security_event", true),
			slog.String("event_id", uuid.NewString()),
			slog.String("remote_ip", req.RemoteIP),
			slog.Any("error", err),
		)
		return &VerificationError{Err: err}
	}
}

// Lookup returns the redacted record matching the request.
func (s *Service) Lookup(ctx context.Context, req LookupRequest) (PublicRecord, error) {
	if err := s.pipeline.Run(ctx, &req); err != nil {
		s.observe(outcomeFor(err))
		return PublicRecord{}, err
	}
	rec, ok := s.store.FindOne(req.ServiceCode, req.IDNumber)
	if !ok {
		s.logger.Debug("leave record not found", slog.String("service_code", req.ServiceCode))
		s.observe(OutcomeNotFound)
		return PublicRecord{}, ErrNotFound
	}
	s.observe(OutcomeFound)
	return rec.Public(), nil
}

// List returns every record without identification numbers.
func (s *Service) List(ctx context.Context) ([]PublicRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListAll(), nil
}

func (s *Service) observe(outcome string) {
	if s.recorder != nil {
		s.recorder.ObserveLookup(outcome)
	}
}

func outcomeFor(err error) string {
	var validationErr *ValidationError
	var verificationErr *VerificationError
	switch {
	case errors.As(err, &validationErr):
		return OutcomeInvalid
	case errors.As(err, &verificationErr):
		return OutcomeRejected
	default:
		return OutcomeError
	}
}
