// file: internals/features/dayplans/plan/service/eod_aggregator.go
package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/dayplans/plan/model"
)

// validateTasksForEOD: setiap task harus punya status (bukan unset) dan
// memenuhi rule remarks. Semua pelanggaran dikumpulkan — EOD parsial
// tidak pernah diterima.
func validateTasksForEOD(tasks []model.TaskModel) error {
	ve := &ValidationError{}
	for i := range tasks {
		t := tasks[i]
		if t.TaskStatus == model.TaskStatusUnset {
			ve.Add(
				fmt.Sprintf("tasks[%d].task_status", i),
				fmt.Sprintf("task %q belum punya status", t.TaskTitle),
			)
		}
		if t.TaskStatus.RequiresRemarks() {
			if t.TaskRemarks == nil || strings.TrimSpace(*t.TaskRemarks) == "" {
				ve.Add(
					fmt.Sprintf("tasks[%d].task_remarks", i),
					fmt.Sprintf("task %q berstatus %s, remarks wajib diisi", t.TaskTitle, t.TaskStatus),
				)
			}
		}
	}
	return ve.OrNil()
}

// SubmitEOD: agregasi progres per-task menjadi laporan akhir hari.
// Resubmit setelah EOD rejection lewat call yang sama dan menimpa record
// EOD lama (overwrite, bukan append).
func SubmitEOD(db *gorm.DB, em Emitter, planID, ownerID uuid.UUID, overallRemarks string) (*model.DayPlanModel, error) {
	now := time.Now()
	overallRemarks = strings.TrimSpace(overallRemarks)

	err := db.Transaction(func(tx *gorm.DB) error {
		plan, err := GetPlanByID(tx, planID)
		if err != nil {
			return err
		}
		if plan.DayPlanOwnerID != ownerID {
			return &PermissionError{Message: "plan ini bukan milik kamu"}
		}
		if plan.IsFrozen() {
			return &PermissionError{Message: "plan sudah difinalisasi, EOD tidak bisa disubmit lagi"}
		}
		switch plan.DayPlanStatus {
		case model.DayPlanStatusInProgress, model.DayPlanStatusRejected:
			return &PermissionError{Message: "plan belum di-approve supervisor"}
		case model.DayPlanStatusPendingEODReview:
			// Submit kedua tanpa perubahan: isi record tidak bergeser,
			// caller dapat state terkini apa adanya
			return &ConflictError{
				Message: "EOD sudah disubmit dan sedang menunggu review",
				Current: plan,
			}
		}

		// Hard stop: semua task harus lengkap sebelum menyentuh storage
		if err := validateTasksForEOD(plan.Tasks); err != nil {
			return err
		}

		var remarks *string
		if overallRemarks != "" {
			remarks = &overallRemarks
		}

		// CAS: hanya jalan kalau plan masih completed + EOD kosong/rejected
		res := tx.Model(&model.DayPlanModel{}).
			Where("day_plan_id = ? AND day_plan_status = ?", planID, model.DayPlanStatusCompleted).
			Where("(day_plan_eod_status IS NULL OR day_plan_eod_status = ?)", model.EODStatusRejected).
			Updates(map[string]interface{}{
				"day_plan_status":              model.DayPlanStatusPendingEODReview,
				"day_plan_eod_status":          model.EODStatusSubmitted,
				"day_plan_eod_overall_remarks": remarks,
				"day_plan_eod_submitted_at":    now,
				"day_plan_eod_reviewed_at":     nil,
				"day_plan_eod_reviewed_by":     nil,
				"day_plan_eod_review_comments": nil,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
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

	log.Printf("[SUCCESS] EOD submitted: plan=%s owner=%s", planID, ownerID)
	emitPlanEvent(em, EventEodSubmitted, plan, nil)
	return plan, nil
}
