package handler

import (
	"net/http"

	"tresor/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck answers liveness probes.
func HealthCheck(c echo.Context) error {
	return response.Answer(c, http.StatusOK, "ok")
}
