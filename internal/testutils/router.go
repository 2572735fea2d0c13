package testutils

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/leadradar/leadradar-api/internal/api/middleware"
	"github.com/leadradar/leadradar-api/internal/api/routes"
	"github.com/leadradar/leadradar-api/internal/config"
	"gorm.io/gorm"
)

// SetupRouter wires the full route table against a fresh in-memory database
// and returns both so tests can seed rows directly.
func SetupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.LoadConfig()
	middleware.Init()

	conn := SetupTestDB(t)
	r := gin.New()
	routes.RegisterRoutes(r, conn, nil, nil)
	return r, conn
}
