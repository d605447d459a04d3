package handler

import (
	"net/http"

	"authsvc/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving. It does not touch the store.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, response.HealthResponse{Status: "ok"})
}
