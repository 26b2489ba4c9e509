package usecase

import "context"

// ContactInput is a contact form submission.
type ContactInput struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Subject string `json:"subject" validate:"required,max=300"`
	Message string `json:"message" validate:"required,max=5000"`
	IP      string `json:"-"`
}

// ContactOutput acknowledges a submission.
type ContactOutput struct {
	MessageID string `json:"messageId"`
}

// ContactUsecase forwards contact form submissions to the mailer.
type ContactUsecase interface {
	Submit(ctx context.Context, input *ContactInput) (*ContactOutput, error)
}
