package middleware

import (
	"go-mrf/internal/rolegate"
	"go-mrf/internal/shared/apperror"
	"go-mrf/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// ActorFromContext builds the RoleGate actor from the claims AuthMiddleware
// stored. It returns nil when no employee is signed in.
func ActorFromContext(c *gin.Context) *rolegate.Actor {
	empID := c.GetString(KeyEmployeeID)
	if empID == "" {
		return nil
	}
	return &rolegate.Actor{EmpID: empID, EmpPos: c.GetString(KeyEmpPos)}
}

type CapabilityChecker interface {
	Can(actor *rolegate.Actor, c rolegate.Capability) error
}

// RequireCapability aborts with 401 for anonymous callers and 403 when the
// actor's roles do not grant capability.
func RequireCapability(gate CapabilityChecker, capability rolegate.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gate.Can(ActorFromContext(c), capability); err != nil {
			response.Abort(c, apperror.ToHTTP(err).WithDetails(gin.H{"required": capability.String()}))
			return
		}
		c.Next()
	}
}
