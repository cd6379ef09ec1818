package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tripdeck/itinerary-timeline/internal/core/ports"
)

// TimelineWarmer is the interface the handler uses to pre-render saved itineraries.
type TimelineWarmer interface {
	Enqueue(itineraryID string) bool
}

// ItineraryHandler handles HTTP requests for itineraries and their timelines.
type ItineraryHandler struct {
	service ports.ItineraryService
	warmer  TimelineWarmer // optional
}

func NewItineraryHandler(service ports.ItineraryService, warmer TimelineWarmer) *ItineraryHandler {
	return &ItineraryHandler{service: service, warmer: warmer}
}

// Create handles POST /v1/itineraries.
//
// @Summary      Create an itinerary day
// @Tags         itineraries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      itineraryRequest  true  "Itinerary"
// @Success      201   {object}  createItineraryResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/itineraries [post]
func (h *ItineraryHandler) Create(c echo.Context) error {
	req, err := bindItinerary(c)
	if err != nil {
		return err
	}

	result, err := h.service.CreateItinerary(c.Request().Context(), toItineraryInput(req))
	if err != nil {
		return err
	}

	if h.warmer != nil {
		h.warmer.Enqueue(result.ID)
	}

	resp := toCreateResponse(result)
	c.Response().Header().Set(echo.HeaderLocation, resp.Links.Self)
	return c.JSON(http.StatusCreated, resp)
}

// Get handles GET /v1/itineraries/:id.
//
// @Summary      Get an itinerary
// @Tags         itineraries
// @Produce      json
// @Param        id   path      string  true  "Itinerary id"
// @Success      200  {object}  domain.Itinerary
// @Failure      404  {object}  errorResponse
// @Router       /v1/itineraries/{id} [get]
func (h *ItineraryHandler) Get(c echo.Context) error {
	it, err := h.service.GetItinerary(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, it)
}

// List handles GET /v1/itineraries.
//
// @Summary      List itineraries
// @Tags         itineraries
// @Produce      json
// @Param        city   query     string  false  "Filter by city (case-insensitive)"
// @Param        page   query     int     false  "Page number (default 1)"
// @Param        limit  query     int     false  "Page size (default 20, max 100)"
// @Success      200    {object}  listItinerariesResponse
// @Failure      400    {object}  errorResponse
// @Router       /v1/itineraries [get]
func (h *ItineraryHandler) List(c echo.Context) error {
	page, err := queryInt(c, "page")
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}

	result, err := h.service.ListItineraries(c.Request().Context(), ports.ListItinerariesInput{
		City:  c.QueryParam("city"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Timeline handles GET /v1/itineraries/:id/timeline.
//
// @Summary      Get the timeline cards of an itinerary
// @Tags         timeline
// @Produce      json
// @Param        id   path      string  true  "Itinerary id"
// @Success      200  {object}  timelineResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/itineraries/{id}/timeline [get]
func (h *ItineraryHandler) Timeline(c echo.Context) error {
	view, err := h.service.GetTimeline(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTimelineResponse(view))
}

// TimelineHTML handles GET /v1/itineraries/:id/timeline.html.
//
// @Summary      Render the timeline of an itinerary as HTML
// @Tags         timeline
// @Produce      html
// @Param        id   path      string  true  "Itinerary id"
// @Success      200  {string}  string
// @Failure      404  {object}  errorResponse
// @Router       /v1/itineraries/{id}/timeline.html [get]
func (h *ItineraryHandler) TimelineHTML(c echo.Context) error {
	markup, err := h.service.RenderTimeline(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, markup)
}

// Preview handles POST /v1/timeline/preview. Nothing is stored.
//
// @Summary      Preview timeline cards for an unsaved itinerary
// @Tags         timeline
// @Accept       json
// @Produce      json
// @Param        body  body      itineraryRequest  true  "Itinerary"
// @Success      200   {object}  timelineResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/timeline/preview [post]
func (h *ItineraryHandler) Preview(c echo.Context) error {
	req, err := bindItinerary(c)
	if err != nil {
		return err
	}

	view, err := h.service.PreviewTimeline(c.Request().Context(), toItineraryInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTimelineResponse(view))
}

// PreviewHTML handles POST /v1/timeline/preview.html.
//
// @Summary      Render an unsaved itinerary as HTML
// @Tags         timeline
// @Accept       json
// @Produce      html
// @Param        body  body      itineraryRequest  true  "Itinerary"
// @Success      200   {string}  string
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/timeline/preview.html [post]
func (h *ItineraryHandler) PreviewHTML(c echo.Context) error {
	req, err := bindItinerary(c)
	if err != nil {
		return err
	}

	markup, err := h.service.RenderPreview(c.Request().Context(), toItineraryInput(req))
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, markup)
}

func bindItinerary(c echo.Context) (itineraryRequest, error) {
	var req itineraryRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return req, nil
}

// queryInt parses an optional integer query parameter; absent means 0.
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return n, nil
}
