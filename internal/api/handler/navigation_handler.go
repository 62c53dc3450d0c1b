package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/classhub/navigation-service/internal/core/domain"
	"github.com/classhub/navigation-service/internal/core/ports"
)

// NavigationHandler exposes the route table and title lookups over HTTP.
type NavigationHandler struct {
	service ports.NavigationService
}

func NewNavigationHandler(service ports.NavigationService) *NavigationHandler {
	return &NavigationHandler{service: service}
}

// Title handles GET /v1/navigation/title.
//
// @Summary      Resolve the display title of a path
// @Tags         navigation
// @Produce      json
// @Param        path  query     string  true  "Current client path (no query string)"
// @Success      200   {object}  titleResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/navigation/title [get]
func (h *NavigationHandler) Title(c echo.Context) error {
	var q titleQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(http.StatusOK, toTitleResponse(h.service.Resolve(q.Path)))
}

// Routes handles GET /v1/navigation/routes.
//
// @Summary      List routes, optionally for one role
// @Tags         navigation
// @Produce      json
// @Security     BearerAuth
// @Param        user_type  query     string  false  "student or faculty; defaults to the token role"
// @Success      200        {object}  routeListResponse
// @Failure      400        {object}  errorResponse
// @Failure      401        {object}  errorResponse
// @Failure      422        {object}  errorResponse
// @Router       /v1/navigation/routes [get]
func (h *NavigationHandler) Routes(c echo.Context) error {
	userType, err := h.userType(c)
	if err != nil {
		return err
	}

	routes := h.service.All()
	if userType != "" {
		routes = h.service.Routes(userType)
	}
	return c.JSON(http.StatusOK, toRouteListResponse(userType, routes))
}

// Sidebar handles GET /v1/navigation/sidebar.
//
// @Summary      List the sidebar entries of a role
// @Tags         navigation
// @Produce      json
// @Security     BearerAuth
// @Param        user_type  query     string  false  "student or faculty; defaults to the token role"
// @Success      200        {object}  routeListResponse
// @Failure      400        {object}  errorResponse
// @Failure      401        {object}  errorResponse
// @Failure      422        {object}  errorResponse
// @Router       /v1/navigation/sidebar [get]
func (h *NavigationHandler) Sidebar(c echo.Context) error {
	userType, err := h.userType(c)
	if err != nil {
		return err
	}
	if userType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_type is required")
	}
	return c.JSON(http.StatusOK, toRouteListResponse(userType, h.service.Sidebar(userType)))
}

func (h *NavigationHandler) userType(c echo.Context) (domain.UserType, error) {
	var q listQuery
	if err := c.Bind(&q); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return "", echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return requestedUserType(c, q.UserType)
}
