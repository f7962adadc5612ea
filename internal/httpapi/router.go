package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/suPer8Hu/rag-mentor/internal/httpapi/handlers"
	"github.com/suPer8Hu/rag-mentor/internal/httpapi/middleware"
	"github.com/suPer8Hu/rag-mentor/internal/mentor"
)

// dev frontends served by vite / create-react-app
var allowedOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

func NewRouter(svc *mentor.Service) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = allowedOrigins
	corsCfg.AllowCredentials = true
	r.Use(cors.New(corsCfg))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"detail": "method not allowed"})
	})

	h := handlers.New(svc)

	r.GET("/health", h.Health)
	r.POST("/ask", h.Ask)

	return r
}
