package main

import (
	"flag"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rhyrak/go-studyplan/internal/logger"
	"github.com/rhyrak/go-studyplan/internal/scheduler"
)

func main() {
	addr := flag.String("addr", ":3001", "listen address")
	flag.Parse()

	log := logger.New("server")
	r, err := newRouter(log)
	if err != nil {
		log.Errorf("setup: %v", err)
		return
	}
	log.Infof("listening on %s", *addr)
	if err := r.Run(*addr); err != nil {
		log.Errorf("server stopped: %v", err)
	}
}

// recentResults bounds the number of plan results kept for GET /plan/:id.
const recentResults = 128

func newRouter(log logger.Logger) (*gin.Engine, error) {
	results, err := lru.New[string, *scheduler.Result](recentResults)
	if err != nil {
		return nil, err
	}
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	h := &handlers{log: log, results: results}
	r.GET("/health", handleHealth)
	r.POST("/plan", h.handlePostPlan)
	r.GET("/plan/:id", h.handleGetPlan)
	return r, nil
}
