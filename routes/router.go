package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Manishrdy/SimCricketX-sub000/config"
	"github.com/Manishrdy/SimCricketX-sub000/internal/live"
	"github.com/Manishrdy/SimCricketX-sub000/internal/match"
)

func SetupRoutes(manager *match.Manager, hub *live.Hub) *gin.Engine {
	r := gin.Default()

	cfg := config.GetConfig()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.App.FrontendURL}
	r.Use(cors.New(corsConfig))

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>SimCricketX</title></head>
				<body style="text-align:center; margin-top: 40px;">
				<h1>SimCricketX 🏏</h1>
				<p>Ball-by-ball T20 simulation engine. POST /api/matches to start one.</p>
				</body>
			</html>
		`))
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":         "ok",
			"active_matches": manager.Count(),
			"live_clients":   hub.ClientCount(),
		})
	})

	// API routes
	api := r.Group("/api")
	match.MatchRoutes(api, manager, hub)

	return r
}
