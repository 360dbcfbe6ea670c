// file: internals/features/dayplans/plan/controller/approval_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/features/dayplans/plan/dto"
	"magangku_backend/internals/features/dayplans/plan/service"
	helper "magangku_backend/internals/helpers"
)

// ApprovalController: semua transisi milik supervisor (gate awal + gate EOD).
// Otorisasi role sudah dijaga middleware OnlyRoles di route.
type ApprovalController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Emitter   service.Emitter
}

func NewApprovalController(db *gorm.DB, em service.Emitter) *ApprovalController {
	return &ApprovalController{
		DB:        db,
		Validator: validator.New(),
		Emitter:   em,
	}
}

// GET /api/a/day-plans/:id
func (ctl *ApprovalController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "day_plan_id tidak valid")
	}

	plan, err := service.GetPlanByID(ctl.DB.WithContext(c.Context()), id)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.Success(c, "OK", dto.FromDayPlanModel(plan))
}

// POST /api/a/day-plans/:id/approve
func (ctl *ApprovalController) Approve(c *fiber.Ctx) error {
	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	planID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "day_plan_id tidak valid")
	}

	plan, err := service.ApprovePlan(ctl.DB.WithContext(c.Context()), ctl.Emitter, planID, reviewerID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.Success(c, "Plan di-approve", dto.FromDayPlanModel(plan))
}

// POST /api/a/day-plans/:id/reject
func (ctl *ApprovalController) Reject(c *fiber.Ctx) error {
	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	planID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "day_plan_id tidak valid")
	}

	var req dto.ReviewCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	plan, err := service.RejectPlan(ctl.DB.WithContext(c.Context()), ctl.Emitter, planID, reviewerID, req.Comments)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.Success(c, "Plan ditolak", dto.FromDayPlanModel(plan))
}

// POST /api/a/day-plans/:id/eod/approve
func (ctl *ApprovalController) ApproveEOD(c *fiber.Ctx) error {
	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	planID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "day_plan_id tidak valid")
	}

	plan, err := service.ApproveEOD(ctl.DB.WithContext(c.Context()), ctl.Emitter, planID, reviewerID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.Success(c, "EOD di-approve, plan difinalisasi", dto.FromDayPlanModel(plan))
}

// POST /api/a/day-plans/:id/eod/reject
func (ctl *ApprovalController) RejectEOD(c *fiber.Ctx) error {
	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	planID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "day_plan_id tidak valid")
	}

	var req dto.ReviewCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	plan, err := service.RejectEOD(ctl.DB.WithContext(c.Context()), ctl.Emitter, planID, reviewerID, req.Comments)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.Success(c, "EOD dikembalikan untuk rework", dto.FromDayPlanModel(plan))
}
