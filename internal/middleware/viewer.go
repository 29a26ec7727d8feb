package middleware

import "github.com/labstack/echo/v4"

// ViewerMiddleware extracts the user claims when a valid bearer token is
// present and proceeds anonymously otherwise. Used on public read routes
// where the viewer identity only personalizes the response.
func ViewerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, err := parseBearerToken(c); err == nil {
				c.Set("user", claims)
			}
			return next(c)
		}
	}
}
