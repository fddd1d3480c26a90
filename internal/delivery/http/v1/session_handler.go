package v1

import (
	"net/http"

	"careertrack-backend/internal/delivery/http/response"
	"careertrack-backend/internal/domain"
	"careertrack-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionUC domain.SessionUsecase
}

// NewSessionHandler registers coaching-session routes
func NewSessionHandler(r *gin.RouterGroup, sessionUC domain.SessionUsecase) {
	handler := &SessionHandler{sessionUC: sessionUC}

	sessions := r.Group("/sessions")
	{
		sessions.GET("/types", handler.ListTypes)
		sessions.POST("", handler.BookSession)
		sessions.GET("", handler.ListSessions)
		sessions.DELETE("/:id", handler.CancelSession)
	}
}

// ListTypes godoc
// @Summary      List bookable session types
// @Tags         sessions
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.InterviewType}
// @Failure      401  {object}  response.Response
// @Router       /sessions/types [get]
// @Security     BearerAuth
func (h *SessionHandler) ListTypes(c *gin.Context) {
	types, err := h.sessionUC.ListTypes(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Session types retrieved", types)
}

// BookSession godoc
// @Summary      Book a coaching session
// @Description  Books a slot for the current client. The coach and meeting link are assigned later by the coaching team.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      domain.BookSessionRequest  true  "Booking data"
// @Success      201   {object}  response.Response{data=domain.Session}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /sessions [post]
// @Security     BearerAuth
func (h *SessionHandler) BookSession(c *gin.Context) {
	var req domain.BookSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	session, err := h.sessionUC.Book(c.Request.Context(), identityFromContext(c), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Session booked", session)
}

// ListSessions godoc
// @Summary      List my coaching sessions
// @Tags         sessions
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Session}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /sessions [get]
// @Security     BearerAuth
func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions, err := h.sessionUC.List(c.Request.Context(), identityFromContext(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Sessions retrieved", sessions)
}

// CancelSession godoc
// @Summary      Cancel a scheduled session
// @Tags         sessions
// @Produce      json
// @Param        id  path      string  true  "Session ID"
// @Success      200 {object}  response.Response
// @Failure      400 {object}  response.Response
// @Failure      401 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /sessions/{id} [delete]
// @Security     BearerAuth
func (h *SessionHandler) CancelSession(c *gin.Context) {
	if err := h.sessionUC.Cancel(c.Request.Context(), identityFromContext(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Session cancelled", nil)
}
