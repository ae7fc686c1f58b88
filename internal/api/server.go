package api

import (
	"github.com/gin-gonic/gin"

	"github.com/camate/camate-api/internal/middleware"
)

type Server struct {
	auth      *AuthHandler
	customer  *CustomerHandler
	upload    *UploadHandler
	output    *OutputHandler
	authMW    *middleware.AuthMiddleware
	rateLimit *middleware.RateLimitMiddleware
}

func NewServer(
	authService AuthService,
	customerService CustomerService,
	uploadService UploadService,
	outputService OutputService,
	authMW *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
) *Server {
	return &Server{
		auth:      NewAuthHandler(authService, authMW),
		customer:  NewCustomerHandler(customerService),
		upload:    NewUploadHandler(uploadService),
		output:    NewOutputHandler(outputService),
		authMW:    authMW,
		rateLimit: rateLimit,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup, globalRateLimit int) {
	api.Use(s.rateLimit.GlobalRateLimit(globalRateLimit))

	// Public endpoints. Signup and login run without tenant context; the
	// resolver treats "no tenant" as a valid state.
	auth := api.Group("/auth")
	{
		auth.POST("/register/ca", s.auth.RegisterFirm)
		auth.POST("/register/customer", s.auth.RegisterCustomer)
		auth.POST("/login", s.auth.Login)
	}

	// Tenant-scoped endpoints: JWT sets the tenant context before any
	// data access, and per-firm rate limiting keys off it.
	customers := api.Group("/customers", s.authMW.JWTAuth(), s.rateLimit.FirmRateLimit(), s.authMW.RequireRole("ca"))
	{
		customers.GET("", s.customer.ListCustomers)
		customers.GET("/:id", s.customer.GetCustomer)
	}

	uploads := api.Group("/uploads", s.authMW.JWTAuth(), s.rateLimit.FirmRateLimit())
	{
		uploads.POST("", s.upload.RequestUpload)
		uploads.POST("/:id/confirm", s.upload.ConfirmUpload)
		uploads.GET("", s.upload.ListUploads)
		uploads.GET("/:id/download", s.upload.DownloadUpload)
	}

	outputs := api.Group("/outputs", s.authMW.JWTAuth(), s.rateLimit.FirmRateLimit(), s.authMW.RequireRole("ca"))
	{
		outputs.POST("", s.output.RecordOutput)
		outputs.GET("", s.output.ListOutputs)
		outputs.GET("/:id/download", s.output.DownloadOutput)
		outputs.POST("/verifications", s.output.StartVerification)
	}
}
