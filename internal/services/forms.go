package services

import (
	"context"

	goamiddleware "goa.design/goa/v3/middleware"
	"go.uber.org/zap"

	"sankalp/internal/domain"
	"sankalp/internal/metrics"
	"sankalp/internal/submission"
	apperrors "sankalp/pkg/errors"
)

// FormService exposes the submission pipeline to transports, adding logs and
// metrics around each call.
type FormService struct {
	registry *submission.Registry
	logger   *zap.Logger
}

// NewFormService creates a new form service
func NewFormService(registry *submission.Registry, logger *zap.Logger) *FormService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormService{
		registry: registry,
		logger:   logger.Named("forms"),
	}
}

// Submit validates and stores a form record of the given kind.
func (s *FormService) Submit(ctx context.Context, kind domain.Kind, raw map[string]any) (domain.Record, error) {
	log := s.logger.With(zap.String("kind", string(kind)), requestIDField(ctx))
	email, _ := raw["email"].(string)
	log.Debug("submit request", zap.String("email", email))

	rec, err := s.registry.Submit(ctx, kind, raw)
	if err != nil {
		s.recordFailure(log, kind, err)
		return nil, err
	}

	log.Info("submit successful", zap.String("id", rec.RecordID()))
	metrics.RecordSubmission(string(kind), metrics.OutcomeAccepted)
	return rec, nil
}

// RejectBody records a request whose body could not be read as a JSON
// object, so it never reached the pipeline.
func (s *FormService) RejectBody(ctx context.Context, kind domain.Kind, err error) {
	s.logger.Info("submit rejected: unreadable body",
		zap.String("kind", string(kind)),
		requestIDField(ctx),
		zap.Error(err),
	)
	metrics.RecordSubmission(string(kind), metrics.OutcomeInvalid)
}

// List returns the public view of a collection.
func (s *FormService) List(ctx context.Context, kind domain.Kind) ([]domain.Record, error) {
	records, err := s.registry.List(ctx, kind)
	if err != nil {
		s.logger.Error("list failed",
			zap.String("kind", string(kind)),
			requestIDField(ctx),
			zap.Error(err),
		)
		return nil, err
	}
	s.logger.Debug("list successful", zap.String("kind", string(kind)), zap.Int("count", len(records)))
	return records, nil
}

// Messages returns the response texts for kind.
func (s *FormService) Messages(kind domain.Kind) submission.Messages {
	return s.registry.Messages(kind)
}

func (s *FormService) recordFailure(log *zap.Logger, kind domain.Kind, err error) {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeValidation:
		appErr, _ := apperrors.As(err)
		log.Info("submit rejected: validation", zap.Strings("problems", appErr.Details))
		metrics.RecordSubmission(string(kind), metrics.OutcomeInvalid)
	case apperrors.ErrCodeDuplicate:
		log.Info("submit rejected: duplicate")
		metrics.RecordSubmission(string(kind), metrics.OutcomeDuplicate)
	default:
		log.Error("submit failed", zap.Error(err))
		metrics.RecordSubmission(string(kind), metrics.OutcomeError)
	}
}

func requestIDField(ctx context.Context) zap.Field {
	if id, ok := ctx.Value(goamiddleware.RequestIDKey).(string); ok && id != "" {
		return zap.String("request_id", id)
	}
	return zap.Skip()
}
