package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rhyrak/go-studyplan/internal/logger"
	"github.com/rhyrak/go-studyplan/internal/scheduler"
)

type handlers struct {
	log     logger.Logger
	results *lru.Cache[string, *scheduler.Result]
}

func handleHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func (h *handlers) handlePostPlan(ctx *gin.Context) {
	var req planRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := createSchedules(&req, h.log)
	if err != nil {
		h.log.Warnf("plan request rejected: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := uuid.NewString()
	h.results.Add(id, res)
	h.log.Infof("plan %s: %d semesters from %s, valid=%t", id, len(res.Schedules), res.Start, res.Valid)

	ctx.JSON(http.StatusOK, planResponse(id, res))
}

func (h *handlers) handleGetPlan(ctx *gin.Context) {
	id := ctx.Param("id")
	res, ok := h.results.Get(id)
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}
	ctx.JSON(http.StatusOK, planResponse(id, res))
}

func planResponse(id string, res *scheduler.Result) gin.H {
	return gin.H{
		"id":        id,
		"start":     res.Start,
		"schedules": res.Schedules,
		"report":    res.Report,
		"valid":     res.Valid,
	}
}
