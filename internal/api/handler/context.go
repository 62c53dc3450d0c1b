package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/classhub/navigation-service/internal/core/domain"
)

// requestedUserType picks the role to filter on: an explicit query value
// first, then the role claim set by the OptionalAuth middleware. It returns
// "" when neither is present.
func requestedUserType(c echo.Context, query string) (domain.UserType, error) {
	if query != "" {
		return domain.ParseUserType(query)
	}
	role, _ := c.Get("role").(string)
	if role == "" {
		return "", nil
	}
	return domain.ParseUserType(role)
}
