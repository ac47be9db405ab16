package routes

import (
	"net/http"

	"joblink_backend/internal/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes mounts every HTTP route. The API lives at the root path so
// existing frontend clients keep working unchanged.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	root := ginRouter.Group("")
	{
		appHandlers.AuthHandler.RegisterRoutes(root)
		appHandlers.ProfileHandler.RegisterRoutes(root)
		appHandlers.JobHandler.RegisterRoutes(root)
		appHandlers.ApplicationHandler.RegisterRoutes(root)
		appHandlers.SavedJobHandler.RegisterRoutes(root)
	}

	ginRouter.GET("/", HealthCheck)
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// HealthCheck godoc
// @Summary      API liveness probe
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       / [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "JobLink API is running",
		"endpoints": []string{
			"POST /register",
			"POST /login",
			"POST /set-role",
			"POST /employee-profile",
			"POST /employer-profile",
			"POST /forgot-password",
			"POST /reset-password",
		},
	})
}
