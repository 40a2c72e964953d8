package handlers

import (
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

// apiInfo is returned from the root route.
type apiInfo struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// getHome godoc
// @Summary Show API information
// @Description Returns the API name, version and the main route groups.
// @Tags root
// @Produce json
// @Success 200 {object} dto.Response{data=apiInfo}
// @Router / [get]
func getHome(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OK(apiInfo{
		Name:    "Finance Tracker API",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"auth":         "/api/v1/auth",
			"transactions": "/api/v1/transactions",
			"admin":        "/api/v1/admin",
			"health":       "/api/v1/health",
		},
	}))
}

// getHealth godoc
// @Summary Health check
// @Description Reports that the server is up.
// @Tags root
// @Produce json
// @Success 200 {object} dto.Response
// @Router /api/v1/health [get]
func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OKWithMessage("Server is running", gin.H{"status": "ok"}))
}

// registerHomeRoutes registers the public root and health routes.
func registerHomeRoutes(r *gin.Engine, v1 *gin.RouterGroup) {
	r.GET("/", getHome)
	r.GET("/health", getHealth)
	v1.GET("/health", getHealth)
}
