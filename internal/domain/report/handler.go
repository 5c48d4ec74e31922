package report

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler exposes report generation over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler wires the report handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the report routes on the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/reports/patients", h.patients)
}

func (h *Handler) patients(c echo.Context) error {
	r, err := h.svc.PatientReport(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, r)
}
