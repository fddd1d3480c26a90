package v1

import (
	"net/http"

	"careertrack-backend/internal/delivery/http/response"
	"careertrack-backend/internal/domain"
	"careertrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := r.Group("/applications")
	{
		applications.POST("", handler.CreateApplication)
		applications.GET("", handler.ListApplications)
	}
}

// CreateApplication godoc
// @Summary      Create a job application
// @Description  Validates and stores one tracked application for the current client
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CreateApplicationRequest  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req domain.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	app, err := h.applicationUC.Create(c.Request.Context(), identityFromContext(c), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application created successfully", app)
}

// ListApplications godoc
// @Summary      List my applications
// @Description  Returns the client's applications newest first, with per-status stats computed over the returned set. The optional status filter narrows both.
// @Tags         applications
// @Produce      json
// @Param        status  query     string  false  "Status filter"  Enums(applied, interviewing, offer, rejected, accepted)
// @Success      200     {object}  response.Response{data=domain.ApplicationList}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	statusFilter := c.Query("status")

	list, err := h.applicationUC.List(c.Request.Context(), identityFromContext(c), statusFilter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", list)
}
