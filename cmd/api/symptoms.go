package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medi-assist/internal/symptoms"
)

const symptomsUpstreamMessage = "An AI error occurred while analyzing your symptoms. Please try again later."

// handleAnalyzeSymptoms godoc
// @Summary Analyze symptoms
// @Description Suggest possible common conditions and over-the-counter remedies for a free-text symptom description. The reply is in the requested language and always carries a safety disclaimer.
// @Tags symptoms
// @Accept json
// @Produce json
// @Param request body symptoms.Request true "Symptom description and language"
// @Success 200 {object} symptoms.Analysis
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/symptoms/analyze [post]
func (app *App) handleAnalyzeSymptoms(c *gin.Context) {
	var req symptoms.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Request body must be a JSON object with symptoms and language."})
		return
	}

	analysis, err := app.symptomService.Analyze(c.Request.Context(), req)
	if err != nil {
		if msg, ok := symptoms.UserMessage(err); ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
			return
		}
		switch {
		case errors.Is(err, symptoms.ErrSuggestion):
			app.logger.Error("symptom analysis failed",
				"request_id", c.GetString(requestIDKey),
				"language", req.Language,
				"error", err,
			)
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: symptomsUpstreamMessage})
		default:
			app.logger.Error("unexpected symptom analysis error", "request_id", c.GetString(requestIDKey), "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: symptomsUpstreamMessage})
		}
		return
	}

	c.JSON(http.StatusOK, analysis)
}
