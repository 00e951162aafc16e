package usecase

import (
	"context"

	"adinas/internal/domain/entity"
	"adinas/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AskConsultationInput defines the data required to open a consultation.
type AskConsultationInput struct {
	Subject   string
	Question  string
	CropType  string
	Category  string
	ImageURLs []string
}

// CompleteConsultationInput carries the officer's answer.
type CompleteConsultationInput struct {
	ConsultationID uuid.UUID
	Answer         string
}

// ListConsultationsInput defines the consultation listing parameters.
type ListConsultationsInput struct {
	Status   entity.ConsultationStatus
	Category string
	Page     int
	PerPage  int
}

// --- Output DTOs ---

// ConsultationListOutput returns a page of consultations with the total count.
type ConsultationListOutput struct {
	Consultations []*entity.Consultation
	Total         int64
}

// ConsultationUsecase defines the interface for consultation business operations.
type ConsultationUsecase interface {
	// Ask opens a consultation for the acting farmer. Pending consultations
	// are visible to all extension officers.
	Ask(ctx context.Context, actor entity.Actor, input *AskConsultationInput) (*entity.Consultation, error)

	// GetByID retrieves a consultation. Visible to the asking farmer, the
	// assigned officer, unassigned officers while pending, and admins.
	GetByID(ctx context.Context, actor entity.Actor, id uuid.UUID) (*entity.Consultation, error)

	// ListMine retrieves the actor's consultations: the ones they asked as a
	// farmer or the ones assigned to them as an officer.
	ListMine(ctx context.Context, actor entity.Actor, input *ListConsultationsInput) (*ConsultationListOutput, error)

	// ListPending retrieves unassigned consultations for officers to pick up.
	// Restricted to extension officers and admins.
	ListPending(ctx context.Context, actor entity.Actor, input *ListConsultationsInput) (*ConsultationListOutput, error)

	// Accept assigns a pending consultation to the acting officer. The
	// farmer is notified.
	Accept(ctx context.Context, actor entity.Actor, consultationID uuid.UUID) (*entity.Consultation, error)

	// Complete records the answer and closes the consultation. Allowed for
	// the assigned officer or an admin. The farmer is notified.
	Complete(ctx context.Context, actor entity.Actor, input *CompleteConsultationInput) (*entity.Consultation, error)

	// Cancel withdraws an open consultation. Allowed for the asking farmer
	// or an admin.
	Cancel(ctx context.Context, actor entity.Actor, consultationID uuid.UUID) (*entity.Consultation, error)
}

// Filter converts listing input into a repository filter. Farmer and officer
// scoping is applied by the service, not the caller.
func (in *ListConsultationsInput) Filter() repository.ConsultationListFilter {
	page := in.Page
	if page < 1 {
		page = 1
	}
	perPage := in.PerPage
	if perPage < 1 || perPage > MaxPageSize {
		perPage = DefaultPageSize
	}

	return repository.ConsultationListFilter{
		Status:   in.Status,
		Category: in.Category,
		Limit:    perPage,
		Offset:   (page - 1) * perPage,
	}
}
