// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"adinas/internal/delivery/http/middleware"
	"adinas/internal/delivery/http/router/handler"
	"adinas/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	SupplierHandler     *handler.SupplierHandler
	ProductHandler      *handler.ProductHandler
	ContentHandler      *handler.ContentHandler
	ReviewHandler       *handler.ReviewHandler
	ConsultationHandler *handler.ConsultationHandler
	FarmRecordHandler   *handler.FarmRecordHandler
	MarketHandler       *handler.MarketHandler
	NotificationHandler *handler.NotificationHandler
	ActivityHandler     *handler.ActivityHandler
	StatsHandler        *handler.StatsHandler
	UploadHandler       *handler.UploadHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	auth := p.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", p.AuthHandler.Register)
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/refresh", p.AuthHandler.RefreshToken)
		authGroup.POST("/logout", p.AuthHandler.Logout)
		authGroup.POST("/change-password", p.AuthHandler.ChangePassword, auth.Authenticate)
	}

	// Current user profile
	meGroup := api.Group("/me", auth.Authenticate)
	{
		meGroup.GET("", p.UserHandler.GetProfile)
		meGroup.PATCH("", p.UserHandler.UpdateProfile)
		meGroup.DELETE("", p.UserHandler.DeleteAccount)
		meGroup.GET("/supplier", p.SupplierHandler.GetMine)
		meGroup.GET("/consultations", p.ConsultationHandler.ListMine)
		meGroup.GET("/notifications", p.NotificationHandler.List)
		meGroup.POST("/notifications/read-all", p.NotificationHandler.MarkAllRead)
		meGroup.POST("/notifications/:id/read", p.NotificationHandler.MarkRead)
		meGroup.POST("/devices", p.NotificationHandler.RegisterDevice)
		meGroup.DELETE("/devices", p.NotificationHandler.UnregisterDevice)
	}

	// Supplier directory: public reads, authenticated writes
	supplierGroup := api.Group("/suppliers")
	{
		supplierGroup.GET("", p.SupplierHandler.List, auth.OptionalAuthenticate)
		supplierGroup.GET("/types", p.SupplierHandler.Types)
		supplierGroup.GET("/:id", p.SupplierHandler.GetByID)
		supplierGroup.POST("", p.SupplierHandler.CreateProfile, auth.Authenticate)
		supplierGroup.PATCH("/:id", p.SupplierHandler.Update, auth.Authenticate)
	}

	// Product catalog: public reads, supplier-owned writes
	productGroup := api.Group("/products")
	{
		productGroup.GET("", p.ProductHandler.List)
		productGroup.GET("/categories", p.ProductHandler.Categories)
		productGroup.GET("/:id", p.ProductHandler.GetByID)
		productGroup.POST("", p.ProductHandler.Create, auth.Authenticate)
		productGroup.PATCH("/:id", p.ProductHandler.Update, auth.Authenticate)
		productGroup.DELETE("/:id", p.ProductHandler.Delete, auth.Authenticate)
		productGroup.POST("/:id/stock", p.ProductHandler.AdjustStock, auth.Authenticate)
	}

	// Educational content: public reads, officer-authored writes
	contentGroup := api.Group("/content")
	{
		contentGroup.GET("", p.ContentHandler.List, auth.OptionalAuthenticate)
		contentGroup.GET("/categories", p.ContentHandler.Categories)
		contentGroup.GET("/slug/:slug", p.ContentHandler.GetBySlug, auth.OptionalAuthenticate)
		contentGroup.GET("/:id", p.ContentHandler.GetByID, auth.OptionalAuthenticate)
		contentGroup.POST("", p.ContentHandler.Create, auth.Authenticate, auth.RequireRole(entity.RoleExtensionOfficer))
		contentGroup.PATCH("/:id", p.ContentHandler.Update, auth.Authenticate)
		contentGroup.POST("/:id/publish", p.ContentHandler.Publish, auth.Authenticate)
		contentGroup.POST("/:id/archive", p.ContentHandler.Archive, auth.Authenticate)
		contentGroup.DELETE("/:id", p.ContentHandler.Delete, auth.Authenticate)
	}

	// Reviews: public reads, authenticated writes
	reviewGroup := api.Group("/reviews")
	{
		reviewGroup.GET("", p.ReviewHandler.List)
		reviewGroup.POST("", p.ReviewHandler.Create, auth.Authenticate)
		reviewGroup.PATCH("/:id", p.ReviewHandler.Update, auth.Authenticate)
		reviewGroup.DELETE("/:id", p.ReviewHandler.Delete, auth.Authenticate)
	}

	// Consultations: farmers ask, officers answer
	consultationGroup := api.Group("/consultations", auth.Authenticate)
	{
		consultationGroup.POST("", p.ConsultationHandler.Ask, auth.RequireRole(entity.RoleFarmer))
		consultationGroup.GET("/pending", p.ConsultationHandler.ListPending, auth.RequireRole(entity.RoleExtensionOfficer))
		consultationGroup.GET("/:id", p.ConsultationHandler.GetByID)
		consultationGroup.POST("/:id/accept", p.ConsultationHandler.Accept, auth.RequireRole(entity.RoleExtensionOfficer))
		consultationGroup.POST("/:id/complete", p.ConsultationHandler.Complete, auth.RequireRole(entity.RoleExtensionOfficer))
		consultationGroup.POST("/:id/cancel", p.ConsultationHandler.Cancel)
	}

	// Farm journal: private to the acting farmer
	farmGroup := api.Group("/farm-records", auth.Authenticate, auth.RequireRole(entity.RoleFarmer))
	{
		farmGroup.POST("", p.FarmRecordHandler.Create)
		farmGroup.GET("", p.FarmRecordHandler.List)
		farmGroup.GET("/summary", p.FarmRecordHandler.Summary)
		farmGroup.GET("/:id", p.FarmRecordHandler.GetByID)
		farmGroup.PATCH("/:id", p.FarmRecordHandler.Update)
		farmGroup.DELETE("/:id", p.FarmRecordHandler.Delete)
	}

	// Market data: public reads, officer-reported writes
	marketGroup := api.Group("/market")
	{
		marketGroup.GET("/prices", p.MarketHandler.ListPrices)
		marketGroup.GET("/weather", p.MarketHandler.GetWeather)
		marketGroup.POST("/prices", p.MarketHandler.ReportPrice, auth.Authenticate, auth.RequireRole(entity.RoleExtensionOfficer))
		marketGroup.POST("/weather", p.MarketHandler.UpsertWeather, auth.Authenticate, auth.RequireRole(entity.RoleExtensionOfficer))
	}

	// File uploads
	api.POST("/uploads", p.UploadHandler.Upload, auth.Authenticate)
	api.DELETE("/uploads", p.UploadHandler.Delete, auth.Authenticate)

	// Admin routes
	adminGroup := api.Group("/admin", auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/users", p.UserHandler.ListUsers)
		adminGroup.GET("/users/:id", p.UserHandler.GetUser)
		adminGroup.PATCH("/users/:id/status", p.UserHandler.UpdateUserStatus)
		adminGroup.DELETE("/users/:id", p.UserHandler.DeleteUser)
		adminGroup.POST("/suppliers/:id/verify", p.SupplierHandler.Verify)
		adminGroup.POST("/suppliers/:id/reject", p.SupplierHandler.Reject)
		adminGroup.GET("/activity", p.ActivityHandler.List)
		adminGroup.GET("/stats", p.StatsHandler.Platform)
	}
}
