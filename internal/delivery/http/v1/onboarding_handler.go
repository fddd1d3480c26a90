package v1

import (
	"net/http"

	"careertrack-backend/internal/delivery/http/response"
	"careertrack-backend/internal/domain"
	"careertrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type OnboardingHandler struct {
	onboardingUC domain.OnboardingUsecase
}

// NewOnboardingHandler registers onboarding routes
func NewOnboardingHandler(r *gin.RouterGroup, onboardingUC domain.OnboardingUsecase) {
	handler := &OnboardingHandler{onboardingUC: onboardingUC}

	r.POST("/onboarding/complete", handler.CompleteOnboarding)
}

// CompleteOnboarding godoc
// @Summary      Complete the onboarding wizard
// @Description  Initializes the client with the wizard's fields and optionally seeds a first application when a company and job title were collected
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CompleteOnboardingRequest  true  "Wizard data"
// @Success      200   {object}  response.Response{data=domain.OnboardingResult}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /onboarding/complete [post]
// @Security     BearerAuth
func (h *OnboardingHandler) CompleteOnboarding(c *gin.Context) {
	var req domain.CompleteOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	result, err := h.onboardingUC.CompleteOnboarding(c.Request.Context(), identityFromContext(c), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Onboarding completed", result)
}
