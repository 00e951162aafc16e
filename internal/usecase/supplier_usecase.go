package usecase

import (
	"context"

	"adinas/internal/domain/entity"
	"adinas/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateSupplierInput defines the data required to open a supplier profile.
type CreateSupplierInput struct {
	CompanyName     string
	BusinessLicense string
	Type            entity.SupplierType
	Description     string
	Address         string
	Region          string
	District        string
	OperatingHours  []entity.OperatingHours
	DeliveryAreas   []string
}

// UpdateSupplierInput defines the updatable supplier fields. Nil pointers
// leave the corresponding field untouched.
type UpdateSupplierInput struct {
	CompanyName    *string
	Description    *string
	Address        *string
	Region         *string
	District       *string
	OperatingHours []entity.OperatingHours
	DeliveryAreas  []string
}

// ListSuppliersInput defines the supplier listing parameters.
type ListSuppliersInput struct {
	Type               entity.SupplierType
	VerificationStatus entity.VerificationStatus
	Region             string
	Search             string
	Page               int
	PerPage            int
}

// RejectSupplierInput carries the mandatory rejection reason.
type RejectSupplierInput struct {
	SupplierID uuid.UUID
	Reason     string
}

// --- Output DTOs ---

// SupplierListOutput returns a page of suppliers with the total count.
type SupplierListOutput struct {
	Suppliers []*entity.Supplier
	Total     int64
}

// SupplierUsecase defines the interface for supplier profile business operations.
type SupplierUsecase interface {
	// CreateProfile opens a supplier profile for the actor. A user can hold
	// at most one profile; the new profile starts pending verification.
	CreateProfile(ctx context.Context, actor entity.Actor, input *CreateSupplierInput) (*entity.Supplier, error)

	// GetByID retrieves a supplier profile. Public.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)

	// GetMine retrieves the actor's own supplier profile.
	GetMine(ctx context.Context, actor entity.Actor) (*entity.Supplier, error)

	// List retrieves supplier profiles matching the filter. Public listings
	// are restricted to verified suppliers by the delivery layer.
	List(ctx context.Context, input *ListSuppliersInput) (*SupplierListOutput, error)

	// Update modifies a supplier profile. Allowed for the owner or an admin.
	Update(ctx context.Context, actor entity.Actor, supplierID uuid.UUID, input *UpdateSupplierInput) (*entity.Supplier, error)

	// Verify moves a pending profile to verified. Admin only; decided
	// profiles cannot be re-decided.
	Verify(ctx context.Context, actor entity.Actor, supplierID uuid.UUID) (*entity.Supplier, error)

	// Reject moves a pending profile to rejected with a reason. Admin only;
	// decided profiles cannot be re-decided.
	Reject(ctx context.Context, actor entity.Actor, input *RejectSupplierInput) (*entity.Supplier, error)
}

// Filter converts listing input into a repository filter.
func (in *ListSuppliersInput) Filter() repository.SupplierListFilter {
	page := in.Page
	if page < 1 {
		page = 1
	}
	perPage := in.PerPage
	if perPage < 1 || perPage > MaxPageSize {
		perPage = DefaultPageSize
	}

	return repository.SupplierListFilter{
		Type:               in.Type,
		VerificationStatus: in.VerificationStatus,
		Region:             in.Region,
		Search:             in.Search,
		Limit:              perPage,
		Offset:             (page - 1) * perPage,
	}
}
