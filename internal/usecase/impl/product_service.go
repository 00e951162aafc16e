package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "adinas/internal/delivery/context"
	"adinas/internal/domain/entity"
	domainerrors "adinas/internal/domain/errors"
	"adinas/internal/domain/repository"
	"adinas/internal/domain/service"
	"adinas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	recorder     *activityRecorder
	logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	txManager repository.TransactionManager,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		txManager:    txManager,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		recorder:     newActivityRecorder(publisher, logger),
		logger:       logger,
	}
}

// Create lists a new product under the actor's verified supplier profile.
func (srv *productService) Create(ctx context.Context, actor entity.Actor, input *usecase.CreateProductInput) (*entity.Product, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Creating product", "userID", actor.ID, "name", input.Name)

	var (
		created  *entity.Product
		auditRow *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		supplier, err := repoFactory.NewSupplierRepository().FindByUserID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, repository.ErrSupplierNotFound) {
				return domainerrors.ErrSupplierNotFound.WrapMessage("product creation failed")
			}

			return errors.Wrap(err, "failed to find supplier")
		}
		if !supplier.IsVerified() {
			return domainerrors.ErrSupplierNotVerified.WrapMessage("product creation failed")
		}

		status := entity.ProductStatusActive
		if input.StockQuantity == 0 {
			status = entity.ProductStatusOutOfStock
		}

		product := &entity.Product{
			ID:                uuid.New(),
			SupplierID:        supplier.ID,
			Name:              input.Name,
			Description:       input.Description,
			Category:          input.Category,
			Subcategory:       input.Subcategory,
			Price:             input.Price,
			Unit:              input.Unit,
			StockQuantity:     input.StockQuantity,
			MinimumOrder:      input.MinimumOrder,
			Status:            status,
			ImageURLs:         input.ImageURLs,
			Tags:              input.Tags,
			Brand:             input.Brand,
			OriginCountry:     input.OriginCountry,
			ExpiryDate:        input.ExpiryDate,
			ManufacturingDate: input.ManufacturingDate,
		}
		if err := repoFactory.NewProductRepository().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionProductCreated, "product", product.ID,
			"listed product "+product.Name, nil)
		if err != nil {
			return err
		}
		created = product

		return nil
	})

	if err != nil {
		logger.Warn("Product creation failed", "userID", actor.ID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute product creation transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return created, nil
}

// GetByID retrieves a product.
func (srv *productService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// List retrieves products matching the filter.
func (srv *productService) List(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductListOutput, error) {
	products, total, err := srv.productRepo.List(ctx, input.Filter())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductListOutput{Products: products, Total: total}, nil
}

// authorize loads a product and checks the actor may mutate it.
// Ownership runs through the supplier profile to its user.
func (srv *productService) authorize(ctx context.Context, repoFactory repository.RepositoryFactory, actor entity.Actor, productID uuid.UUID, forUpdate bool) (*entity.Product, error) {
	productRepo := repoFactory.NewProductRepository()

	var (
		product *entity.Product
		err     error
	)
	if forUpdate {
		product, err = productRepo.FindByIDForUpdate(ctx, productID)
	} else {
		product, err = productRepo.FindByID(ctx, productID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	supplier, err := repoFactory.NewSupplierRepository().FindByID(ctx, product.SupplierID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find owning supplier")
	}
	if !actor.CanMutate(supplier.UserID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("product mutation rejected")
	}

	return product, nil
}

// Update modifies a product.
func (srv *productService) Update(ctx context.Context, actor entity.Actor, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var (
		updated  *entity.Product
		auditRow *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := srv.authorize(ctx, repoFactory, actor, productID, false)
		if err != nil {
			return err
		}

		applyProductUpdates(product, input)

		if err := repoFactory.NewProductRepository().Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionProductUpdated, "product", product.ID,
			"updated product "+product.Name, nil)
		if err != nil {
			return err
		}
		updated = product

		return nil
	})

	if err != nil {
		logger.Warn("Product update failed", "productID", productID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute product update transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return updated, nil
}

// applyProductUpdates copies the set fields onto the product.
func applyProductUpdates(product *entity.Product, input *usecase.UpdateProductInput) {
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Subcategory != nil {
		product.Subcategory = *input.Subcategory
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.MinimumOrder != nil {
		product.MinimumOrder = *input.MinimumOrder
	}
	if input.Status != nil && input.Status.IsValid() {
		product.Status = *input.Status
	}
	if input.ImageURLs != nil {
		product.ImageURLs = input.ImageURLs
	}
	if input.Tags != nil {
		product.Tags = input.Tags
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.OriginCountry != nil {
		product.OriginCountry = *input.OriginCountry
	}
	if input.ExpiryDate != nil {
		product.ExpiryDate = input.ExpiryDate
	}
	if input.ManufacturingDate != nil {
		product.ManufacturingDate = input.ManufacturingDate
	}
}

// Delete removes a product.
func (srv *productService) Delete(ctx context.Context, actor entity.Actor, productID uuid.UUID) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var auditRow *entity.ActivityLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := srv.authorize(ctx, repoFactory, actor, productID, false)
		if err != nil {
			return err
		}

		if err := repoFactory.NewProductRepository().Delete(ctx, product.ID); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionProductDeleted, "product", product.ID,
			"removed product "+product.Name, nil)

		return err
	})

	if err != nil {
		logger.Warn("Product deletion failed", "productID", productID, "error", err.Error())

		return errors.Wrap(err, "failed to execute product deletion transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return nil
}

// AdjustStock applies an add, subtract, or set adjustment under a row lock.
func (srv *productService) AdjustStock(ctx context.Context, actor entity.Actor, input *usecase.AdjustStockInput) (*usecase.AdjustStockOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Adjusting stock", "productID", input.ProductID, "action", input.Action, "quantity", input.Quantity)

	if !input.Action.IsValid() {
		return nil, domainerrors.ErrInvalidStockAction.WrapMessage("stock adjustment rejected")
	}
	if input.Quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}

	var (
		output   *usecase.AdjustStockOutput
		auditRow *entity.ActivityLog
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// The row lock serializes concurrent adjustments; the check and the
		// write see the same quantity.
		product, err := srv.authorize(ctx, repoFactory, actor, input.ProductID, true)
		if err != nil {
			return err
		}

		previous, err := product.AdjustStock(input.Action, input.Quantity)
		if err != nil {
			if errors.Is(err, entity.ErrInsufficientStock) {
				return domainerrors.ErrInsufficientStock.WithDetails(
					"available " + strconv.Itoa(previous) + ", requested " + strconv.Itoa(input.Quantity))
			}

			return errors.Wrap(err, "failed to adjust stock")
		}

		if err := repoFactory.NewProductRepository().Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to persist stock adjustment")
		}

		auditRow, err = srv.recorder.record(ctx, repoFactory, actor,
			entity.ActionStockAdjusted, "product", product.ID,
			"adjusted stock of "+product.Name+" ("+string(input.Action)+" "+strconv.Itoa(input.Quantity)+")",
			map[string]string{
				"action":    string(input.Action),
				"quantity":  strconv.Itoa(input.Quantity),
				"old_stock": strconv.Itoa(previous),
				"new_stock": strconv.Itoa(product.StockQuantity),
			})
		if err != nil {
			return err
		}

		output = &usecase.AdjustStockOutput{
			Product:       product,
			PreviousStock: previous,
			NewStock:      product.StockQuantity,
		}

		return nil
	})

	if err != nil {
		logger.Warn("Stock adjustment failed", "productID", input.ProductID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute stock adjustment transaction")
	}

	srv.recorder.publish(ctx, auditRow)

	return output, nil
}
