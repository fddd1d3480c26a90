package v1

import (
	"careertrack-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// identityFromContext rebuilds the verified identity the auth middleware
// stored on the request.
func identityFromContext(c *gin.Context) domain.Identity {
	return domain.Identity{
		UserID:    c.GetString(string(domain.KeyUserID)),
		Email:     c.GetString(string(domain.KeyUserEmail)),
		FirstName: c.GetString(string(domain.KeyFirstName)),
		LastName:  c.GetString(string(domain.KeyLastName)),
	}
}
