// file: internals/features/dayplans/draftcache/controller/draft_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	draftDto "magangku_backend/internals/features/dayplans/draftcache/dto"
	draftModel "magangku_backend/internals/features/dayplans/draftcache/model"
	planModel "magangku_backend/internals/features/dayplans/plan/model"
	helper "magangku_backend/internals/helpers"
)

type DraftController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDraftController(db *gorm.DB) *DraftController {
	return &DraftController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /api/u/day-plan-drafts
// Draft + timestamp plan in_progress (kalau ada) untuk rekonsiliasi di client
func (ctl *DraftController) Get(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var draft draftModel.DayPlanDraftModel
	found := true
	if err := ctl.DB.WithContext(c.Context()).
		First(&draft, "draft_owner_id = ?", ownerID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		found = false
	}

	resp := draftDto.GetDraftResponse{}
	if found {
		resp.Draft = draft
	}

	// Plan in_progress milik owner (belum di-approve) ikut dilaporkan
	var plan planModel.DayPlanModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("day_plan_owner_id = ? AND day_plan_status = ?", ownerID, planModel.DayPlanStatusInProgress).
		Order("day_plan_updated_at DESC").
		First(&plan).Error; err == nil {
		resp.ActivePlanID = plan.DayPlanID
		t := plan.DayPlanUpdatedAt
		resp.ActivePlanUpdatedAt = &t
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if !found && resp.ActivePlanUpdatedAt == nil {
		return helper.Error(c, fiber.StatusNotFound, "Belum ada draft tersimpan")
	}
	return helper.Success(c, "OK", resp)
}

// PUT /api/u/day-plan-drafts
// Upsert per owner: satu draft per trainee, isi ditimpa
func (ctl *DraftController) Save(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req draftDto.SaveDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := draftModel.DayPlanDraftModel{
		DraftID:            uuid.New(),
		DraftOwnerID:       ownerID,
		DraftPayload:       req.DraftPayload,
		DraftClientSavedAt: req.DraftClientSavedAt,
	}
	if err := ctl.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "draft_owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"draft_payload", "draft_client_saved_at", "draft_updated_at"}),
		}).
		Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// Jalur conflict mempertahankan draft_id lama; baca ulang supaya respons
	// cocok dengan baris yang tersimpan
	var saved draftModel.DayPlanDraftModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&saved, "draft_owner_id = ?", ownerID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Draft tersimpan", saved)
}

// DELETE /api/u/day-plan-drafts
// Dipanggil client setelah submit sukses (bukan otomatis dari server)
func (ctl *DraftController) Delete(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).
		Where("draft_owner_id = ?", ownerID).
		Delete(&draftModel.DayPlanDraftModel{}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Draft dihapus", nil)
}
