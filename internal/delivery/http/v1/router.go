package v1

import (
	"net/http"
	"time"

	"careertrack-backend/config"
	"careertrack-backend/internal/delivery/http/middleware"
	"careertrack-backend/internal/delivery/http/response"
	"careertrack-backend/internal/domain"
	"careertrack-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ClientUC      domain.ClientUsecase
	ApplicationUC domain.ApplicationUsecase
	OnboardingUC  domain.OnboardingUsecase
	ResumeUC      domain.ResumeUsecase
	SessionUC     domain.SessionUsecase
	FeedbackUC    domain.FeedbackUsecase
	JWKSProvider  *auth.Provider
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config))
	protected.Use(middleware.WriteRateLimit(deps.Config.RateLimitWriteThreshold, window))
	{
		NewClientHandler(protected, deps.ClientUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewOnboardingHandler(protected, deps.OnboardingUC)
		NewResumeHandler(protected, deps.ResumeUC)
		NewSessionHandler(protected, deps.SessionUC)
		NewFeedbackHandler(protected, deps.FeedbackUC)
	}

	return r
}
