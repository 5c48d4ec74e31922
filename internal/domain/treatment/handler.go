package treatment

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/saludtotal/clinic/pkg/domainerr"
	"github.com/saludtotal/clinic/pkg/pagination"
)

// Handler exposes treatment operations over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler wires the treatment handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the treatment routes on the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/treatments", h.create)
	api.GET("/treatments", h.list)
	api.GET("/treatments/active", h.active)
	api.GET("/treatments/:id", h.get)
	api.PUT("/treatments/:id/complete", h.complete)
	api.PUT("/treatments/:id/discontinue", h.discontinue)
}

type createRequest struct {
	PatientID    string    `json:"patient_id"`
	Diagnosis    string    `json:"diagnosis"`
	Prescription string    `json:"prescription"`
	StartDate    time.Time `json:"start_date"`
}

func (h *Handler) create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	t, err := h.svc.Create(c.Request().Context(), req.PatientID, req.Diagnosis, req.Prescription, req.StartDate)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, ToDTO(t))
}

func (h *Handler) list(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		treatments []*Treatment
		err        error
	)
	if pid := c.QueryParam("patient_id"); pid != "" {
		treatments, err = h.svc.ListByPatient(ctx, pid)
	} else {
		treatments, err = h.svc.List(ctx)
	}
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, pageOf(c, treatments))
}

func (h *Handler) active(c echo.Context) error {
	treatments, err := h.svc.Active(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ToDTOs(treatments))
}

func (h *Handler) get(c echo.Context) error {
	t, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ToDTO(t))
}

func (h *Handler) complete(c echo.Context) error {
	t, err := h.svc.Complete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ToDTO(t))
}

func (h *Handler) discontinue(c echo.Context) error {
	t, err := h.svc.Discontinue(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ToDTO(t))
}

func pageOf(c echo.Context, treatments []*Treatment) *pagination.Response {
	params := pagination.FromContext(c)
	total := len(treatments)
	start := params.Offset
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return pagination.NewResponse(ToDTOs(treatments[start:end]), total, params)
}

func httpError(err error) error {
	if ve := domainerr.AsValidation(err); ve != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
	}
	if errors.Is(err, domainerr.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "treatment or patient not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}
