package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"autolot/internal/delivery/http/response"
)

// HealthCheck handles GET /health.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
