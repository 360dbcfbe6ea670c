// file: internals/features/dayplans/plan/service/progress_tracker.go
package service

import (
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/dayplans/plan/model"
)

// SetTaskStatus: trainee melaporkan progres satu task.
// Hanya boleh saat plan completed dan EOD belum terkirim (atau ditolak).
// Remarks wajib non-kosong untuk in_progress/pending, dibersihkan untuk
// completed kalau tidak diisi.
func SetTaskStatus(db *gorm.DB, em Emitter, planID, taskID, ownerID uuid.UUID, status model.TaskStatus, remarks *string) (*model.DayPlanModel, error) {
	ve := &ValidationError{}
	if !status.IsValid() || status == model.TaskStatusUnset {
		ve.Add("task_status", "status harus completed, in_progress, atau pending")
	}

	var trimmed *string
	if remarks != nil {
		r := strings.TrimSpace(*remarks)
		if r != "" {
			trimmed = &r
		}
	}
	if status.RequiresRemarks() && trimmed == nil {
		ve.Add("task_remarks", "remarks wajib diisi untuk status in_progress atau pending")
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var plan model.DayPlanModel
		if err := tx.First(&plan, "day_plan_id = ?", planID).Error; err != nil {
			if isRecordNotFound(err) {
				return ErrPlanNotFound
			}
			return err
		}
		if plan.DayPlanOwnerID != ownerID {
			return &PermissionError{Message: "plan ini bukan milik kamu"}
		}
		if plan.IsFrozen() {
			return &PermissionError{Message: "plan sudah difinalisasi, task tidak bisa diubah"}
		}
		switch plan.DayPlanStatus {
		case model.DayPlanStatusInProgress, model.DayPlanStatusRejected:
			return &PermissionError{Message: "plan belum di-approve supervisor"}
		case model.DayPlanStatusPendingEODReview:
			cur, _ := GetPlanByID(tx, planID)
			return &ConflictError{
				Message: "EOD sedang menunggu review, task terkunci sementara",
				Current: cur,
			}
		}

		// CAS satu statement: update task hanya kalau plan masih editable
		res := tx.Model(&model.TaskModel{}).
			Where("task_id = ? AND task_day_plan_id = ?", taskID, planID).
			Where("task_day_plan_id IN (SELECT day_plan_id FROM day_plans WHERE day_plan_id = ? AND day_plan_status = ? AND (day_plan_eod_status IS NULL OR day_plan_eod_status = ?))",
				planID, model.DayPlanStatusCompleted, model.EODStatusRejected).
			Updates(map[string]interface{}{
				"task_status":  status,
				"task_remarks": trimmed,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Task tidak ada, atau plan keburu berpindah state
			var n int64
			if err := tx.Model(&model.TaskModel{}).
				Where("task_id = ? AND task_day_plan_id = ?", taskID, planID).
				Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return ErrTaskNotFound
			}
			cur, err := GetPlanByID(tx, planID)
			if err != nil {
				return err
			}
			return &ConflictError{
				Message: "plan sudah berpindah state, muat ulang dulu",
				Current: cur,
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

	log.Printf("[SUCCESS] Task status changed: plan=%s task=%s status=%s", planID, taskID, status)
	emitPlanEvent(em, EventTaskStatusChanged, plan, &taskID)
	return plan, nil
}
