// file: internals/features/dayplans/plan/controller/day_plan_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	"magangku_backend/internals/features/dayplans/plan/dto"
	"magangku_backend/internals/features/dayplans/plan/service"
	helper "magangku_backend/internals/helpers"
)

/* ========================================================
   Controller
======================================================== */

type DayPlanController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Emitter   service.Emitter
}

func NewDayPlanController(db *gorm.DB, em service.Emitter) *DayPlanController {
	return &DayPlanController{
		DB:        db,
		Validator: validator.New(),
		Emitter:   em,
	}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

/* ========================================================
   Handlers (trainee)
======================================================== */

// POST /api/u/day-plans
// Jalur create DAN edit-and-resubmit (day_plan_id diisi = resubmit id lama)
func (ctl *DayPlanController) Submit(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SubmitDayPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// PlanAuthor: validasi menyeluruh SEBELUM menyentuh storage
	draft, err := service.BuildDraft(req.DayPlanDate, req.Tasks)
	if err != nil {
		return writeServiceError(c, err)
	}

	role, _ := helper.GetRoleFromToken(c)
	if role == "" {
		role = constants.RoleTrainee
	}

	plan, err := service.SubmitPlan(ctl.DB.WithContext(c.Context()), ctl.Emitter, ownerID, role, draft, req.DayPlanID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Plan berhasil disubmit", dto.FromDayPlanModel(plan))
}

// GET /api/u/day-plans
func (ctl *DayPlanController) List(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := service.ListPlansByOwner(ctl.DB.WithContext(c.Context()), ownerID, p.Limit, p.Offset)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.DayPlanResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromDayPlanModel(&rows[i]))
	}

	return helper.Success(c, "OK", dto.ListDayPlanResponse{
		Data:       out,
		Pagination: helper.BuildPagination(p, total, len(out)),
	})
}

// GET /api/u/day-plans/:id
func (ctl *DayPlanController) GetByID(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "day_plan_id tidak valid")
	}

	plan, err := service.GetPlanByID(ctl.DB.WithContext(c.Context()), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	if plan.DayPlanOwnerID != ownerID {
		return helper.Error(c, fiber.StatusForbidden, "Akses ditolak")
	}

	return helper.Success(c, "OK", dto.FromDayPlanModel(plan))
}

// GET /api/u/day-plans/:id/edit
// Muat plan in_progress/rejected ke buffer authoring untuk diedit;
// submit berikutnya menimpa record yang sama (lihat Submit).
func (ctl *DayPlanController) LoadForEdit(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "day_plan_id tidak valid")
	}

	draft, err := service.LoadForEdit(ctl.DB.WithContext(c.Context()), id, ownerID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.Success(c, "OK", fiber.Map{
		"day_plan_id": id,
		"draft":       draft,
	})
}
