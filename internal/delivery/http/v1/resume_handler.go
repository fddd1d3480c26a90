package v1

import (
	"net/http"

	"careertrack-backend/internal/delivery/http/response"
	"careertrack-backend/internal/domain"
	"careertrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

// NewResumeHandler registers resume routes
func NewResumeHandler(r *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resumes := r.Group("/resumes")
	{
		resumes.POST("", handler.RegisterResume)
		resumes.GET("", handler.ListResumes)
		resumes.POST("/:id/feedback", handler.RequestAIFeedback)
	}
}

// RegisterResume godoc
// @Summary      Register a resume version
// @Description  Creates the version record and returns a presigned URL to upload the file to
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CreateResumeRequest  true  "Version metadata"
// @Success      201   {object}  response.Response{data=domain.ResumeUpload}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      503   {object}  response.Response
// @Router       /resumes [post]
// @Security     BearerAuth
func (h *ResumeHandler) RegisterResume(c *gin.Context) {
	var req domain.CreateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	upload, err := h.resumeUC.Register(c.Request.Context(), identityFromContext(c), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume version registered", upload)
}

// ListResumes godoc
// @Summary      List my resume versions
// @Tags         resumes
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Resume}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes [get]
// @Security     BearerAuth
func (h *ResumeHandler) ListResumes(c *gin.Context) {
	resumes, err := h.resumeUC.List(c.Request.Context(), identityFromContext(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resumes retrieved", resumes)
}

// RequestAIFeedback godoc
// @Summary      Request AI feedback on a resume version
// @Description  Flags the version for review. Processing happens out of band; poll the list endpoint for status.
// @Tags         resumes
// @Produce      json
// @Param        id  path      string  true  "Resume ID"
// @Success      200 {object}  response.Response{data=domain.Resume}
// @Failure      401 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /resumes/{id}/feedback [post]
// @Security     BearerAuth
func (h *ResumeHandler) RequestAIFeedback(c *gin.Context) {
	resume, err := h.resumeUC.RequestAIFeedback(c.Request.Context(), identityFromContext(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "AI feedback requested", resume)
}
