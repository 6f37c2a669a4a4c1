package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StaticDir is an on-disk directory served under a URL prefix.
type StaticDir struct {
	Prefix string
	Dir    string
}

// NewRouter wires every route onto a fresh gin engine.
func NewRouter(h *Handlers, uploads StaticDir) *gin.Engine {
	registerFieldNames()

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), observe())

	if uploads.Dir != "" {
		r.Static(uploads.Prefix, uploads.Dir)
	}

	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/giftgenie", h.GiftGenie)
	r.POST("/stylesuggest", h.StyleSuggest)

	r.POST("/teelab", h.UploadDesign)
	r.GET("/teelab/designs", h.ListDesigns)
	r.POST("/like/:id", h.Like)

	r.POST("/signup", h.Signup)

	return r
}
