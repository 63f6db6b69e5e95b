package route

import (
	"ThreatLens/controllers"
	"ThreatLens/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes. The analysis endpoint is exposed
// both at the root (deployment parity) and under /v1.
func RegisterRoutes(router *gin.Engine, threatController *controllers.ThreatController) {
	handlers.RegisterThreatRoutes(&router.RouterGroup, threatController)

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterThreatRoutes(v1Routes, threatController)
	}
}
