package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/openblog/blog-api/internal/core/auth"
)

// Principal extracts the principal injected by the auth middleware. Routes
// without auth middleware, or with optional auth and no token, yield the
// anonymous principal.
func Principal(c echo.Context) auth.Principal {
	p, _ := c.Get("principal").(auth.Principal)
	return p
}
