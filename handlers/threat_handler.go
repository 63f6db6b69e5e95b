package handlers

import (
	"ThreatLens/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterThreatRoutes binds both route spellings to the same controller.
// The English and Portuguese paths are aliases, not separate handlers.
func RegisterThreatRoutes(router *gin.RouterGroup, threatController *controllers.ThreatController) {
	router.POST("/analyze_threats", threatController.AnalyzeThreats)
	router.POST("/analisar_ameacas", threatController.AnalyzeThreats)
}
