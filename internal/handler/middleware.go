package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "sitefix/internal/errors"
	"sitefix/internal/model"
	"sitefix/internal/service"
)

const sessionUserKey = "sessionUser"

// RequireUser gates a route group on an authenticated session.
func RequireUser(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := auth.Current(c.Request().Context())
			if user == nil {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrUnauthorized)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			c.Set(sessionUserKey, user)
			return next(c)
		}
	}
}

// RequireAdmin gates a route group on an authenticated admin session.
func RequireAdmin(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := auth.Current(c.Request().Context())
			if user == nil {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrUnauthorized)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			if user.Role != model.RoleAdmin {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			c.Set(sessionUserKey, user)
			return next(c)
		}
	}
}

// sessionUser returns the user attached by the gate middleware, or nil.
func sessionUser(c echo.Context) *model.User {
	user, _ := c.Get(sessionUserKey).(*model.User)
	return user
}
