// Package router contains routing and server setup for the API delivery.
package router

import (
	"oilshare/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LogisticsHandler  *handler.LogisticsHandler
	ReportHandler     *handler.ReportHandler
	ComplianceHandler *handler.ComplianceHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	logisticsHandler  *handler.LogisticsHandler
	reportHandler     *handler.ReportHandler
	complianceHandler *handler.ComplianceHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		logisticsHandler:  params.LogisticsHandler,
		reportHandler:     params.ReportHandler,
		complianceHandler: params.ComplianceHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	apiV1.GET("/generators", r.logisticsHandler.ListGenerators)

	// Shared collection calculator
	logisticsGroup := apiV1.Group("/logistics")
	{
		logisticsGroup.POST("/estimate", r.logisticsHandler.Estimate)
		logisticsGroup.POST("/sessions", r.logisticsHandler.CreateSession)
		logisticsGroup.GET("/sessions/:id", r.logisticsHandler.GetSession)
		logisticsGroup.DELETE("/sessions/:id", r.logisticsHandler.DeleteSession)
		logisticsGroup.POST("/sessions/:id/toggle", r.logisticsHandler.ToggleGenerator)
		logisticsGroup.POST("/sessions/:id/reset", r.logisticsHandler.ResetSession)
		logisticsGroup.GET("/sessions/:id/route", r.logisticsHandler.PreviewRoute)
		logisticsGroup.POST("/sessions/:id/collection-requests", r.logisticsHandler.RequestCollection)
	}

	// Monthly disposal reports
	reportsGroup := apiV1.Group("/reports")
	{
		reportsGroup.GET("", r.reportHandler.ListReports)
		reportsGroup.POST("/extract", r.reportHandler.SimulateExtraction)
		reportsGroup.GET("/:month", r.reportHandler.GetReport)
		reportsGroup.PUT("/:month", r.reportHandler.UpdateAmount)
		reportsGroup.POST("/:month/certificate", r.reportHandler.UploadCertificate)
		reportsGroup.GET("/:month/qr", r.reportHandler.CertificateQR)
	}

	apiV1.POST("/certificates/verify", r.reportHandler.VerifyCertificate)

	complianceGroup := apiV1.Group("/compliance")
	{
		complianceGroup.GET("/profile", r.complianceHandler.GetProfile)
		complianceGroup.GET("/status", r.complianceHandler.GetStatus)
		complianceGroup.GET("/checklist", r.complianceHandler.ListChecklist)
		complianceGroup.GET("/wastewater", r.complianceHandler.ListWastewaterReports)
	}

	apiV1.GET("/dashboard", r.complianceHandler.GetDashboard)
	apiV1.GET("/audit-report", r.complianceHandler.GetAuditReport)
	apiV1.GET("/directory", r.complianceHandler.SearchDirectory)
}
