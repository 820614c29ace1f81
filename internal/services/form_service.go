package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"makhana/internal/events"
	"makhana/internal/models"
	"makhana/pkg/sheets"
)

// FormService forwards the storefront's public forms to the spreadsheet.
type FormService struct {
	submitter Submitter
	publisher events.Publisher
	logger    *zap.Logger
}

// NewFormService creates a new FormService. publisher may be nil.
func NewFormService(submitter Submitter, publisher events.Publisher, logger *zap.Logger) *FormService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormService{submitter: submitter, publisher: publisher, logger: logger}
}

// SubmitContact forwards a contact-page message.
func (s *FormService) SubmitContact(ctx context.Context, msg models.ContactSubmission) (*sheets.Result, error) {
	msg.Email = strings.TrimSpace(msg.Email)
	return s.submit(ctx, sheets.TypeContact, events.ContactReceived, msg)
}

// Subscribe records a newsletter sign-up. The address is stored lower-cased.
func (s *FormService) Subscribe(ctx context.Context, sub models.NewsletterSubscription) (*sheets.Result, error) {
	sub.Email = strings.ToLower(strings.TrimSpace(sub.Email))
	return s.submit(ctx, sheets.TypeNewsletter, events.NewsletterSubscribed, sub)
}

// SubmitBulkOrder forwards a wholesale inquiry.
func (s *FormService) SubmitBulkOrder(ctx context.Context, inquiry models.BulkOrderInquiry) (*sheets.Result, error) {
	inquiry.Email = strings.TrimSpace(inquiry.Email)
	return s.submit(ctx, sheets.TypeBulkOrder, events.BulkOrderReceived, inquiry)
}

func (s *FormService) submit(ctx context.Context, t sheets.Type, event string, data any) (*sheets.Result, error) {
	res, err := s.submitter.Submit(ctx, t, data)
	if err != nil {
		s.logger.Warn("form submission failed", zap.String("type", string(t)), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
	events.Emit(s.publisher, s.logger, event, data)
	return res, nil
}
