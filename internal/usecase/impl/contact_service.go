package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "folio/internal/delivery/context"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/service"
	"folio/internal/usecase"

	"go.uber.org/fx"
)

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	Publisher service.EventPublisher
	Logger    *slog.Logger
}

type contactService struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

// Submit hands a validated contact message to the mailer topic.
func (srv *contactService) Submit(ctx context.Context, input *usecase.ContactInput) (*usecase.ContactOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name, email, subject and message are required")
	}

	event := &service.ContactMessageEvent{
		RequestID: deliverycontext.RequestIDFromContext(ctx),
		MessageID: newObjectID(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Subject:   strings.TrimSpace(input.Subject),
		Message:   strings.TrimSpace(input.Message),
		IP:        input.IP,
		SentAt:    srv.now().UTC(),
	}
	if event.Name == "" || event.Email == "" || event.Subject == "" || event.Message == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name, email, subject and message are required")
	}

	if err := srv.publisher.PublishContactMessage(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish contact message", "error", err, "messageID", event.MessageID)

		return nil, domainerrors.ErrPublishFailed
	}

	srv.log(ctx).Info("Contact message published", "messageID", event.MessageID)

	return &usecase.ContactOutput{MessageID: event.MessageID}, nil
}
