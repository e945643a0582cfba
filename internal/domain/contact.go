package domain

import (
	"context"
	"time"
)

// ContactMessage represents a contact form submission
type ContactMessage struct {
	Name    string `json:"name" binding:"required,notblank,max=200"`
	Email   string `json:"email" binding:"required,email,max=254"`
	Subject string `json:"subject,omitempty" binding:"omitempty,max=200"`
	Message string `json:"message" binding:"required,notblank,max=5000"`
}

// ContactRecord is the persisted form of a ContactMessage.
type ContactRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactReceipt describes what happened to a submission.
// Persisted is false when no store is configured.
type ContactReceipt struct {
	ID        string
	Persisted bool
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact stores the message when a store is available
	SubmitContact(ctx context.Context, msg *ContactMessage) (ContactReceipt, error)
}
