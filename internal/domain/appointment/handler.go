package appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/saludtotal/clinic/pkg/domainerr"
	"github.com/saludtotal/clinic/pkg/pagination"
)

// Handler exposes appointment operations over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler wires the appointment handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the appointment routes on the API group. The
// upcoming horizon in days comes from configuration.
func (h *Handler) RegisterRoutes(api *echo.Group, horizonDays int) {
	api.POST("/appointments", h.create)
	api.GET("/appointments", h.list)
	api.GET("/appointments/upcoming", h.upcoming(horizonDays))
	api.GET("/appointments/:id", h.get)
	api.PUT("/appointments/:id/complete", h.complete)
	api.PUT("/appointments/:id/cancel", h.cancel)
}

type createRequest struct {
	PatientID  string    `json:"patient_id"`
	Date       time.Time `json:"date"`
	DoctorName string    `json:"doctor_name"`
	Reason     string    `json:"reason"`
	Notes      *string   `json:"notes"`
}

func (h *Handler) create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	a, err := h.svc.Create(c.Request().Context(), req.PatientID, req.Date, req.DoctorName, req.Reason, req.Notes)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, ToDTO(a))
}

func (h *Handler) list(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		appointments []*Appointment
		err          error
	)
	if pid := c.QueryParam("patient_id"); pid != "" {
		appointments, err = h.svc.ListByPatient(ctx, pid)
	} else {
		appointments, err = h.svc.List(ctx)
	}
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, pageOf(c, appointments))
}

func (h *Handler) get(c echo.Context) error {
	a, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ToDTO(a))
}

func (h *Handler) complete(c echo.Context) error {
	a, err := h.svc.Complete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ToDTO(a))
}

func (h *Handler) cancel(c echo.Context) error {
	a, err := h.svc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ToDTO(a))
}

func (h *Handler) upcoming(horizonDays int) echo.HandlerFunc {
	return func(c echo.Context) error {
		appointments, err := h.svc.Upcoming(c.Request().Context(), horizonDays)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, ToDTOs(appointments))
	}
}

func pageOf(c echo.Context, appointments []*Appointment) *pagination.Response {
	params := pagination.FromContext(c)
	total := len(appointments)
	start := params.Offset
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return pagination.NewResponse(ToDTOs(appointments[start:end]), total, params)
}

func httpError(err error) error {
	if ve := domainerr.AsValidation(err); ve != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
	}
	if errors.Is(err, domainerr.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "appointment or patient not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}
