package v1

import (
	"net/http"

	"careertrack-backend/internal/delivery/http/response"
	"careertrack-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackUC domain.FeedbackUsecase
}

// NewFeedbackHandler registers feedback routes
func NewFeedbackHandler(r *gin.RouterGroup, feedbackUC domain.FeedbackUsecase) {
	handler := &FeedbackHandler{feedbackUC: feedbackUC}

	r.GET("/feedback", handler.ListFeedback)
}

// ListFeedback godoc
// @Summary      List my feedback
// @Description  Returns coach and AI feedback for the current client, newest first
// @Tags         feedback
// @Produce      json
// @Param        type  query     string  false  "Feedback type filter"  Enums(resume, interview, application)
// @Success      200   {object}  response.Response{data=[]domain.Feedback}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /feedback [get]
// @Security     BearerAuth
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	entries, err := h.feedbackUC.List(c.Request.Context(), identityFromContext(c), c.Query("type"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Feedback retrieved", entries)
}
