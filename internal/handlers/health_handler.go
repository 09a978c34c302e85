package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gente-api/internal/cache"
)

type HealthHandler struct {
	db        *gorm.DB
	cache     cache.Cache
	cacheOn   bool
	storageOn bool
}

func NewHealthHandler(db *gorm.DB, c cache.Cache, cacheOn, storageOn bool) *HealthHandler {
	return &HealthHandler{db: db, cache: c, cacheOn: cacheOn, storageOn: storageOn}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	dbStatus := "ok"
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		dbStatus = "down"
		status = http.StatusServiceUnavailable
	}

	cacheStatus := "disabled"
	if h.cacheOn {
		cacheStatus = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			cacheStatus = "down"
		}
	}

	storageStatus := "disabled"
	if h.storageOn {
		storageStatus = "enabled"
	}

	c.JSON(status, gin.H{
		"status":   dbStatus,
		"database": dbStatus,
		"cache":    cacheStatus,
		"storage":  storageStatus,
	})
}
