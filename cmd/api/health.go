package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"` // Response message
}

// HealthResponse reports which backends the service was started with
type HealthResponse struct {
	Status          string `json:"status" example:"ok"`
	PlaceSource     string `json:"placeSource" example:"overpass"`
	Cache           string `json:"cache" example:"memory"`
	SymptomAnalysis bool   `json:"symptomAnalysis" example:"true"` // false when no model API key is configured
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}

// handleHealth godoc
// @Summary Service health
// @Description Report the configured place source, cache backend and whether symptom analysis is available
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (app *App) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:          "ok",
		PlaceSource:     app.placeSource,
		Cache:           app.cfg.Cache.Backend,
		SymptomAnalysis: app.llmConfigured,
	})
}
