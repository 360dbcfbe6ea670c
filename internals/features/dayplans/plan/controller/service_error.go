// file: internals/features/dayplans/plan/controller/service_error.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"magangku_backend/internals/features/dayplans/plan/dto"
	"magangku_backend/internals/features/dayplans/plan/service"
	helper "magangku_backend/internals/helpers"
)

// writeServiceError memetakan taksonomi error service ke envelope JSON:
// ValidationError → 400 (semua field), PermissionError → 403,
// ConflictError → 409 + state terkini, not found → 404, sisanya 500 apa
// adanya (core tidak retry diam-diam).
func writeServiceError(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", ve.Fields)
	}

	var pe *service.PermissionError
	if errors.As(err, &pe) {
		return helper.Error(c, fiber.StatusForbidden, pe.Message)
	}

	var ce *service.ConflictError
	if errors.As(err, &ce) {
		if ce.Current != nil {
			cur := dto.FromDayPlanModel(ce.Current)
			return helper.Conflict(c, ce.Message, cur)
		}
		return helper.Conflict(c, ce.Message, nil)
	}

	if errors.Is(err, service.ErrPlanNotFound) || errors.Is(err, service.ErrTaskNotFound) {
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	}

	return helper.Error(c, fiber.StatusInternalServerError, err.Error())
}
