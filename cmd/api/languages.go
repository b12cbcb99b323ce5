package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medi-assist/internal/symptoms"
)

// LanguageResponse describes one accepted language
type LanguageResponse struct {
	Key        string `json:"key" example:"hindi"`
	Tag        string `json:"tag" example:"hi"`
	Name       string `json:"name" example:"Hindi"`
	NativeName string `json:"nativeName" example:"हिन्दी"`
}

// LanguagesResponse lists the accepted languages
type LanguagesResponse struct {
	Languages []LanguageResponse `json:"languages"`
}

// handleListLanguages godoc
// @Summary List supported languages
// @Description Languages accepted by the symptom analysis endpoint, by key or BCP 47 tag
// @Tags symptoms
// @Produce json
// @Success 200 {object} LanguagesResponse
// @Router /api/v1/languages [get]
func (app *App) handleListLanguages(c *gin.Context) {
	langs := symptoms.SupportedLanguages()
	resp := LanguagesResponse{Languages: make([]LanguageResponse, 0, len(langs))}
	for _, l := range langs {
		resp.Languages = append(resp.Languages, LanguageResponse{
			Key:        l.Key,
			Tag:        l.Tag.String(),
			Name:       l.EnglishName(),
			NativeName: l.NativeName(),
		})
	}
	c.JSON(http.StatusOK, resp)
}
