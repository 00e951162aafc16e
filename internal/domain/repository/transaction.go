package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository instance bound to the current transaction.
	NewUserRepository() UserRepository

	// NewCredentialRepository returns a CredentialRepository instance bound to the current transaction.
	NewCredentialRepository() CredentialRepository

	// NewRefreshTokenRepository returns a RefreshTokenRepository instance bound to the current transaction.
	NewRefreshTokenRepository() RefreshTokenRepository

	// NewSupplierRepository returns a SupplierRepository instance bound to the current transaction.
	NewSupplierRepository() SupplierRepository

	// NewProductRepository returns a ProductRepository instance bound to the current transaction.
	NewProductRepository() ProductRepository

	// NewContentRepository returns a ContentRepository instance bound to the current transaction.
	NewContentRepository() ContentRepository

	// NewReviewRepository returns a ReviewRepository instance bound to the current transaction.
	NewReviewRepository() ReviewRepository

	// NewConsultationRepository returns a ConsultationRepository instance bound to the current transaction.
	NewConsultationRepository() ConsultationRepository

	// NewFarmRecordRepository returns a FarmRecordRepository instance bound to the current transaction.
	NewFarmRecordRepository() FarmRecordRepository

	// NewMarketPriceRepository returns a MarketPriceRepository instance bound to the current transaction.
	NewMarketPriceRepository() MarketPriceRepository

	// NewWeatherRepository returns a WeatherRepository instance bound to the current transaction.
	NewWeatherRepository() WeatherRepository

	// NewActivityLogRepository returns an ActivityLogRepository instance bound to the current transaction.
	NewActivityLogRepository() ActivityLogRepository

	// NewNotificationRepository returns a NotificationRepository instance bound to the current transaction.
	NewNotificationRepository() NotificationRepository
}
