package patient

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/saludtotal/clinic/pkg/domainerr"
	"github.com/saludtotal/clinic/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/patients", h.Create)
	api.GET("/patients", h.List)
	api.GET("/patients/:id", h.Get)
	api.PUT("/patients/:id/medical-history", h.UpdateMedicalHistory)
	api.PUT("/patients/:id/contact", h.UpdateContact)
	api.DELETE("/patients/:id", h.Delete)
}

type createRequest struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	MedicalHistory string `json:"medical_history"`
	Contact        string `json:"contact"`
}

func (h *Handler) Create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.Create(c.Request().Context(), req.Name, req.Age, req.Gender, req.MedicalHistory, req.Contact)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, p.ToDTO())
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p.ToDTO())
}

// List returns all patients, narrowed by any search query parameters
// (name, age_min, age_max, gender, contact; all criteria must match).
func (h *Handler) List(c echo.Context) error {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		return httpError(err)
	}
	patients, err := h.svc.Search(c.Request().Context(), criteria)
	if err != nil {
		return httpError(err)
	}
	dtos := ToDTOs(patients)
	pg := pagination.FromContext(c)
	page := pageOf(dtos, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, len(dtos), pg))
}

type updateTextRequest struct {
	Value string `json:"value"`
}

func (h *Handler) UpdateMedicalHistory(c echo.Context) error {
	var req updateTextRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.UpdateMedicalHistory(c.Request().Context(), c.Param("id"), req.Value)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p.ToDTO())
}

func (h *Handler) UpdateContact(c echo.Context) error {
	var req updateTextRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.UpdateContact(c.Request().Context(), c.Param("id"), req.Value)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p.ToDTO())
}

func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func criteriaFromQuery(c echo.Context) (SearchCriteria, error) {
	criteria := SearchCriteria{
		Name:    c.QueryParam("name"),
		Gender:  c.QueryParam("gender"),
		Contact: c.QueryParam("contact"),
	}
	if raw := c.QueryParam("age_min"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, domainerr.Invalid("age_min", "must be an integer")
		}
		criteria.AgeMin = &v
	}
	if raw := c.QueryParam("age_max"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, domainerr.Invalid("age_max", "must be an integer")
		}
		criteria.AgeMax = &v
	}
	return criteria, nil
}

func pageOf(dtos []DTO, pg pagination.Params) []DTO {
	if pg.Offset >= len(dtos) {
		return []DTO{}
	}
	end := pg.Offset + pg.Limit
	if end > len(dtos) {
		end = len(dtos)
	}
	return dtos[pg.Offset:end]
}

// httpError maps domain errors onto HTTP status codes.
func httpError(err error) error {
	if ve := domainerr.AsValidation(err); ve != nil {
		return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
	}
	if errors.Is(err, domainerr.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
