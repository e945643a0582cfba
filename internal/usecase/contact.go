package usecase

import (
	"context"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContactNotifier delivers a copy of each saved contact message.
type ContactNotifier interface {
	IsConfigured() bool
	SendContactEmail(data email.ContactEmailData) error
}

type contactUsecase struct {
	store    domain.DocumentStore
	notifier ContactNotifier
	now      func() time.Time
}

// NewContactUsecase creates a new contact usecase. store and notifier may be nil.
func NewContactUsecase(store domain.DocumentStore, notifier ContactNotifier) domain.ContactUsecase {
	return &contactUsecase{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
}

// SubmitContact persists the message. Without a store the submission is accepted
// and dropped; a failing store surfaces its error unchanged.
func (uc *contactUsecase) SubmitContact(ctx context.Context, msg *domain.ContactMessage) (domain.ContactReceipt, error) {
	if uc.store == nil {
		logger.Log.Warn("Contact message not persisted", "reason", domain.ErrStoreUnavailable.Error())
		return domain.ContactReceipt{}, nil
	}

	record := domain.ContactRecord{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(msg.Name),
		Email:     strings.TrimSpace(msg.Email),
		Subject:   strings.TrimSpace(msg.Subject),
		Message:   strings.TrimSpace(msg.Message),
		CreatedAt: uc.now().UTC(),
	}

	doc, err := domain.ToDocument(record)
	if err != nil {
		return domain.ContactReceipt{}, err
	}
	// Native time so MongoDB stores a BSON date; JSON backends still encode RFC3339
	doc["created_at"] = record.CreatedAt

	if _, err := uc.store.CreateDocument(ctx, domain.CollectionContactMessage, doc); err != nil {
		return domain.ContactReceipt{}, err
	}

	uc.notify(record)

	return domain.ContactReceipt{ID: record.ID, Persisted: true}, nil
}

// notify is best effort; the message is already saved.
func (uc *contactUsecase) notify(record domain.ContactRecord) {
	if uc.notifier == nil || !uc.notifier.IsConfigured() {
		return
	}
	err := uc.notifier.SendContactEmail(email.ContactEmailData{
		SenderName:  record.Name,
		SenderEmail: record.Email,
		Subject:     record.Subject,
		Message:     record.Message,
	})
	if err != nil {
		logger.Log.Warn("Contact notification failed", "contact_id", record.ID, "error", err)
	}
}
