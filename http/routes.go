package http

// registerRoutes sets up all routes for the server.
// All routes are defined in this single file for easy navigation.
func (s *Server) registerRoutes() {
	// Health check routes (public)
	s.echo.GET("/health", s.handleHealthCheck)
	s.echo.GET("/health/live", s.handleLivenessCheck)
	s.echo.GET("/health/ready", s.handleReadinessCheck)

	// Protected routes (require a valid API token)
	protected := s.echo.Group("/api")
	protected.Use(s.RequireAuth())

	// Inspections
	protected.GET("/inspections/next", s.handleNextPending)
	protected.GET("/inspections/:id", s.handleGetInspection)

	// Defect review
	protected.PUT("/inspections/:id/defects/:defectId/status", s.handleSetDefectStatus)
	protected.PUT("/inspections/:id/defects/:defectId/cost", s.handleSetDefectCost)

	// Quote lifecycle
	protected.POST("/inspections/:id/quote/approve", s.handleApproveQuote)
	protected.POST("/inspections/:id/invoice", s.handleCreateInvoice)

	// Documents
	protected.POST("/inspections/:id/documents/invoice", s.handleExportInvoice)
	protected.POST("/inspections/:id/documents/report", s.handleExportReport)
}
