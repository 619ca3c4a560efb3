package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.POST("/deck/encode", h.encode)
		api.GET("/deck/decode", h.decode)
		api.GET("/deck/qr", h.qr)
		api.GET("/deck/text", h.text)
		api.GET("/deck/image", h.deckImage)
		api.POST("/cards/filter", h.filter)
		api.GET("/cards/:id", h.card)
	}
}
