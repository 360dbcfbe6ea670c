// file: internals/features/dayplans/plan/controller/progress_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/dayplans/plan/dto"
	"magangku_backend/internals/features/dayplans/plan/model"
	"magangku_backend/internals/features/dayplans/plan/service"
	helper "magangku_backend/internals/helpers"
)

type ProgressController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Emitter   service.Emitter
}

func NewProgressController(db *gorm.DB, em service.Emitter) *ProgressController {
	return &ProgressController{
		DB:        db,
		Validator: validator.New(),
		Emitter:   em,
	}
}

// PUT /api/u/day-plans/:id/tasks/:taskId/status
func (ctl *ProgressController) SetTaskStatus(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	planID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "day_plan_id tidak valid")
	}
	taskID, err := parseUUIDParam(c, "taskId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "task_id tidak valid")
	}

	var req dto.SetTaskStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	plan, err := service.SetTaskStatus(
		ctl.DB.WithContext(c.Context()), ctl.Emitter,
		planID, taskID, ownerID,
		model.TaskStatus(req.TaskStatus), req.TaskRemarks,
	)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.Success(c, "Status task diperbarui", dto.FromDayPlanModel(plan))
}

// POST /api/u/day-plans/:id/eod
func (ctl *ProgressController) SubmitEOD(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	planID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "day_plan_id tidak valid")
	}

	var req dto.SubmitEODRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	plan, err := service.SubmitEOD(ctl.DB.WithContext(c.Context()), ctl.Emitter, planID, ownerID, req.EODOverallRemarks)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.Success(c, "EOD berhasil disubmit", dto.FromDayPlanModel(plan))
}
