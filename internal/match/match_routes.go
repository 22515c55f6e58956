package match

import (
	"github.com/gin-gonic/gin"

	"github.com/Manishrdy/SimCricketX-sub000/internal/live"
)

// MatchRoutes sets up all simulation routes.
func MatchRoutes(router *gin.RouterGroup, manager *Manager, hub *live.Hub) {
	controller := NewMatchController(manager, hub)

	matches := router.Group("/matches")
	{
		matches.POST("", controller.StartMatch)
		matches.GET("/:id", controller.GetMatch)
		matches.GET("/:id/history", controller.GetHistory)
		matches.POST("/:id/ball", controller.NextBall)
		matches.POST("/:id/impact-swap", controller.ImpactSwap)
		matches.POST("/:id/batting-order", controller.BattingOrder)
		matches.POST("/:id/rain", controller.Rain)
		matches.POST("/:id/super-over", controller.StartSuperOver)
		matches.POST("/:id/super-over/ball", controller.NextSuperOverBall)
		matches.GET("/:id/stream", controller.Stream)
	}
}
