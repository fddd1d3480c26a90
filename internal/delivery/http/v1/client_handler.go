package v1

import (
	"net/http"

	"careertrack-backend/internal/delivery/http/response"
	"careertrack-backend/internal/domain"
	"careertrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientUC domain.ClientUsecase
}

// NewClientHandler registers client routes
func NewClientHandler(r *gin.RouterGroup, clientUC domain.ClientUsecase) {
	handler := &ClientHandler{clientUC: clientUC}

	clients := r.Group("/clients")
	{
		clients.POST("/init", handler.InitClient)
		clients.GET("/me", handler.GetMe)
	}
}

// InitClient godoc
// @Summary      Initialize client record
// @Description  Idempotent create-or-update of the client for the current identity. Onboarding fields, when supplied, are merged and mark onboarding complete.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      domain.InitClientRequest  false  "Optional onboarding fields"
// @Success      200   {object}  response.Response{data=domain.Client}
// @Success      201   {object}  response.Response{data=domain.Client}
// @Failure      401   {object}  response.Response
// @Router       /clients/init [post]
// @Security     BearerAuth
func (h *ClientHandler) InitClient(c *gin.Context) {
	identity := identityFromContext(c)

	// Body is optional: a bare call just ensures the row exists
	var req domain.InitClientRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.BadRequest("Invalid request body"))
			return
		}
	}

	client, created, err := h.clientUC.InitClient(c.Request.Context(), identity, &req)
	if err != nil {
		c.Error(err)
		return
	}

	if created {
		response.Success(c, http.StatusCreated, "Client created successfully", client)
		return
	}
	response.Success(c, http.StatusOK, "Client resolved", client)
}

// GetMe godoc
// @Summary      Get my client profile
// @Description  Returns the client record for the current identity
// @Tags         clients
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Client}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /clients/me [get]
// @Security     BearerAuth
func (h *ClientHandler) GetMe(c *gin.Context) {
	client, err := h.clientUC.GetByIdentity(c.Request.Context(), identityFromContext(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Client retrieved", client)
}
