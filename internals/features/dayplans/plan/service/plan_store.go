// file: internals/features/dayplans/plan/service/plan_store.go
package service

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/dayplans/plan/model"
)

/* =========================
   Reads (tanpa lock)
   ========================= */

func GetPlanByID(db *gorm.DB, planID uuid.UUID) (*model.DayPlanModel, error) {
	var plan model.DayPlanModel
	err := db.
		Preload("Tasks", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("task_position ASC")
		}).
		Preload("Tasks.Checkboxes", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("checkbox_position ASC")
		}).
		First(&plan, "day_plan_id = ?", planID).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func ListPlansByOwner(db *gorm.DB, ownerID uuid.UUID, limit, offset int) ([]model.DayPlanModel, int64, error) {
	qry := db.Model(&model.DayPlanModel{}).
		Where("day_plan_owner_id = ?", ownerID)

	var total int64
	if err := qry.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.DayPlanModel
	if err := qry.
		Preload("Tasks", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("task_position ASC")
		}).
		Preload("Tasks.Checkboxes", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("checkbox_position ASC")
		}).
		Order("day_plan_date DESC, day_plan_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

/* =========================
   Submit (create atau edit-and-resubmit)
   ========================= */

// SubmitPlan menegakkan invariant satu plan aktif per (owner, tanggal).
// Idempotent per plan id: resubmit id yang sama menimpa isi, reset status
// ke in_progress, dan membersihkan record EOD + komentar rejection.
func SubmitPlan(db *gorm.DB, em Emitter, ownerID uuid.UUID, createdByRole string, draft *DraftPlan, resubmitID *uuid.UUID) (*model.DayPlanModel, error) {
	now := time.Now()
	planID := uuid.New()
	if resubmitID != nil {
		planID = *resubmitID
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Jalur resubmit: plan lama harus ada, milik owner, dan masih editable
		if resubmitID != nil {
			var existing model.DayPlanModel
			if err := tx.First(&existing, "day_plan_id = ?", *resubmitID).Error; err != nil {
				if isRecordNotFound(err) {
					return ErrPlanNotFound
				}
				return err
			}
			if existing.DayPlanOwnerID != ownerID {
				return &PermissionError{Message: "plan ini bukan milik kamu"}
			}
			if existing.IsFrozen() {
				return &PermissionError{Message: "plan sudah difinalisasi, tidak bisa disubmit ulang"}
			}
			if existing.DayPlanStatus != model.DayPlanStatusInProgress && existing.DayPlanStatus != model.DayPlanStatusRejected {
				cur, _ := GetPlanByID(tx, *resubmitID)
				return &ConflictError{
					Message: "plan sudah di-approve, tidak bisa disubmit ulang",
					Current: cur,
				}
			}
		}

		// Invariant: maksimal satu plan aktif (non-rejected, non-frozen)
		// per (owner, tanggal)
		var blocker model.DayPlanModel
		blockerQry := tx.
			Where("day_plan_owner_id = ? AND day_plan_date = ?", ownerID, draft.Date).
			Where("day_plan_status <> ?", model.DayPlanStatusRejected).
			Where("(day_plan_eod_status IS NULL OR day_plan_eod_status <> ?)", model.EODStatusApproved)
		if resubmitID != nil {
			blockerQry = blockerQry.Where("day_plan_id <> ?", *resubmitID)
		}
		if err := blockerQry.First(&blocker).Error; err == nil {
			cur, _ := GetPlanByID(tx, blocker.DayPlanID)
			return &ConflictError{
				Message: "sudah ada plan aktif untuk tanggal ini",
				Current: cur,
			}
		} else if !isRecordNotFound(err) {
			return err
		}

		if resubmitID != nil {
			// Overwrite field + bersihkan task/checkbox lama
			res := tx.Model(&model.DayPlanModel{}).
				Where("day_plan_id = ?", *resubmitID).
				Updates(map[string]interface{}{
					"day_plan_date":                draft.Date,
					"day_plan_status":              model.DayPlanStatusInProgress,
					"day_plan_submitted_at":        now,
					"day_plan_approved_by":         nil,
					"day_plan_rejected_by":         nil,
					"day_plan_rejection_comments":  nil,
					"day_plan_eod_status":          nil,
					"day_plan_eod_overall_remarks": nil,
					"day_plan_eod_submitted_at":    nil,
					"day_plan_eod_reviewed_at":     nil,
					"day_plan_eod_reviewed_by":     nil,
					"day_plan_eod_review_comments": nil,
				})
			if res.Error != nil {
				return res.Error
			}
			if err := tx.
				Where("checkbox_task_id IN (SELECT task_id FROM day_plan_tasks WHERE task_day_plan_id = ?)", *resubmitID).
				Delete(&model.CheckboxModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("task_day_plan_id = ?", *resubmitID).Delete(&model.TaskModel{}).Error; err != nil {
				return err
			}
		} else {
			plan := model.DayPlanModel{
				DayPlanID:            planID,
				DayPlanOwnerID:       ownerID,
				DayPlanDate:          draft.Date,
				DayPlanStatus:        model.DayPlanStatusInProgress,
				DayPlanCreatedByRole: createdByRole,
				DayPlanSubmittedAt:   now,
			}
			if err := tx.Create(&plan).Error; err != nil {
				if isUniqueViolation(err) {
					// Kena partial unique index (owner, date) — balapan
					// dengan submit lain yang menang duluan
					return &ConflictError{Message: "sudah ada plan aktif untuk tanggal ini"}
				}
				return err
			}
		}

		// Insert task + checkbox sesuai urutan draft
		for i := range draft.Tasks {
			dt := draft.Tasks[i]
			task := model.TaskModel{
				TaskID:             dt.TaskID,
				TaskDayPlanID:      planID,
				TaskPosition:       i,
				TaskTitle:          dt.Title,
				TaskDescription:    dt.Description,
				TaskTimeAllocation: dt.TimeAllocation,
				TaskStatus:         model.TaskStatusUnset,
			}
			if err := tx.Create(&task).Error; err != nil {
				return err
			}
			for j := range dt.Checkboxes {
				dc := dt.Checkboxes[j]
				box := model.CheckboxModel{
					CheckboxID:             dc.CheckboxID,
					CheckboxTaskID:         dt.TaskID, // FK stabil, bukan posisi
					CheckboxPosition:       j,
					CheckboxLabel:          dc.Label,
					CheckboxChecked:        dc.Checked,
					CheckboxTimeAllocation: dc.TimeAllocation,
				}
				if err := tx.Create(&box).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	plan, err := GetPlanByID(db, planID)
	if err != nil {
		return nil, err
	}

	log.Printf("[SUCCESS] DayPlan submitted: id=%s owner=%s date=%s", plan.DayPlanID, ownerID, draft.Date)
	emitPlanEvent(em, EventPlanSubmitted, plan, nil)
	return plan, nil
}

// Deteksi unique violation Postgres (kode "23505") tanpa import pgx/pgconn
// biar portable (harness test pakai sqlite)
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "23505")
}
