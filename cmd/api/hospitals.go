package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medi-assist/internal/hospitals"
)

const hospitalsUpstreamMessage = "An error occurred while finding nearby hospitals. Please try again later."

// NearbyHospitalsInput defines the query parameters for the nearby hospitals endpoint.
// Pointers distinguish a missing value from the valid coordinate 0.
type NearbyHospitalsInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// handleNearbyHospitals godoc
// @Summary Find nearby hospitals
// @Description Return the nearest facilities to a coordinate, nearest first. Open status is advisory.
// @Tags hospitals
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(12.9716)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(77.5946)
// @Success 200 {object} hospitals.NearbyHospitals
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/hospitals/nearby [get]
func (app *App) handleNearbyHospitals(c *gin.Context) {
	var input NearbyHospitalsInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "latitude and longitude are required decimal degrees"})
		return
	}

	// Delegate to business layer
	result, err := app.hospitalService.FindNearby(c.Request.Context(), *input.Latitude, *input.Longitude)
	if err != nil {
		switch {
		case errors.Is(err, hospitals.ErrInvalidLatitude), errors.Is(err, hospitals.ErrInvalidLongitude):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, hospitals.ErrPlaceSearch):
			app.logger.Error("failed to find nearby hospitals",
				"request_id", c.GetString(requestIDKey),
				"latitude", *input.Latitude,
				"longitude", *input.Longitude,
				"error", err,
			)
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: hospitalsUpstreamMessage})
		default:
			app.logger.Error("unexpected nearby hospitals error", "request_id", c.GetString(requestIDKey), "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: hospitalsUpstreamMessage})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
