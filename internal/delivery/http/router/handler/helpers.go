package handler

import (
	"slices"
	"strconv"

	"fryfinder/internal/domain/entity"
	"fryfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actorFromContext builds the usecase actor from the adminID and roles the
// auth middleware set on the echo context.
func actorFromContext(c echo.Context) (usecase.Actor, bool) {
	adminID, ok := c.Get("adminID").(uuid.UUID)
	if !ok {
		return usecase.Actor{}, false
	}

	roles, _ := c.Get("roles").([]string)

	return usecase.Actor{
		AdminID: adminID,
		Super:   slices.Contains(roles, entity.RoleSuper),
	}, true
}

func parseFloat(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}
