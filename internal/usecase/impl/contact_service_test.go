package impl

import (
	"context"
	"errors"
	"testing"

	deliverycontext "folio/internal/delivery/context"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/service"
	mockSvc "folio/internal/mocks/service"
	"folio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestContactService(t *testing.T) (usecase.ContactUsecase, *mockSvc.MockEventPublisher) {
	t.Helper()

	publisher := mockSvc.NewMockEventPublisher(t)

	return NewContactService(ContactServiceParams{Publisher: publisher, Logger: newDiscardLogger()}), publisher
}

func TestContactService_Submit(t *testing.T) {
	srv, publisher := createTestContactService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	var published *service.ContactMessageEvent
	publisher.EXPECT().PublishContactMessage(ctx, mock.AnythingOfType("*service.ContactMessageEvent")).
		Run(func(_ context.Context, event *service.ContactMessageEvent) { published = event }).
		Return(nil)

	out, err := srv.Submit(ctx, &usecase.ContactInput{
		Name:    " Grace ",
		Email:   "grace@example.com",
		Subject: "Hello",
		Message: "Let's talk",
		IP:      "192.0.2.1",
	})

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.NotEmpty(t, out.MessageID)
	assert.Equal(t, out.MessageID, published.MessageID)
	assert.Equal(t, "req-1", published.RequestID)
	assert.Equal(t, "Grace", published.Name)
	assert.Equal(t, "192.0.2.1", published.IP)
	assert.False(t, published.SentAt.IsZero())
}

func TestContactService_Submit_MissingFields(t *testing.T) {
	srv, _ := createTestContactService(t)

	_, err := srv.Submit(context.Background(), &usecase.ContactInput{Name: "Grace", Email: "grace@example.com", Message: "  "})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestContactService_Submit_PublishFailure(t *testing.T) {
	srv, publisher := createTestContactService(t)
	ctx := context.Background()

	publisher.EXPECT().PublishContactMessage(ctx, mock.Anything).Return(errors.New("topic not found"))

	_, err := srv.Submit(ctx, &usecase.ContactInput{Name: "a", Email: "a@b.c", Subject: "s", Message: "m"})

	require.ErrorIs(t, err, domainerrors.ErrPublishFailed)
}
