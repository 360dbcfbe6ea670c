// file: internals/features/dayplans/plan/service/review_gate.go
package service

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/dayplans/plan/model"
)

// eodUnderReview: precondition kedua gate review
func eodUnderReview(plan *model.DayPlanModel) bool {
	return plan.DayPlanStatus == model.DayPlanStatusPendingEODReview &&
		plan.DayPlanEODStatus != nil &&
		*plan.DayPlanEODStatus == model.EODStatusSubmitted
}

// ApproveEOD: sign-off final supervisor. Setelah ini plan beku — semua
// mutasi berikutnya dari tracker/aggregator ditolak PermissionDenied.
// Review kedua pada record yang sudah resolved dapat Conflict.
func ApproveEOD(db *gorm.DB, em Emitter, planID, reviewerID uuid.UUID) (*model.DayPlanModel, error) {
	now := time.Now()

	err := db.Transaction(func(tx *gorm.DB) error {
		plan, err := GetPlanByID(tx, planID)
		if err != nil {
			return err
		}
		if !eodUnderReview(plan) {
			return &ConflictError{
				Message: "EOD tidak sedang menunggu review",
				Current: plan,
			}
		}

		// Consistency check terakhir sebelum membekukan: rule remarks harus
		// tetap terpenuhi (ditegakkan saat submit EOD DAN saat review)
		if err := validateTasksForEOD(plan.Tasks); err != nil {
			return err
		}

		res := tx.Model(&model.DayPlanModel{}).
			Where("day_plan_id = ? AND day_plan_status = ? AND day_plan_eod_status = ?",
				planID, model.DayPlanStatusPendingEODReview, model.EODStatusSubmitted).
			Updates(map[string]interface{}{
				"day_plan_eod_status":      model.EODStatusApproved,
				"day_plan_eod_reviewed_at": now,
				"day_plan_eod_reviewed_by": reviewerID,
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
				Message: "EOD sudah direview oleh orang lain",
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

	log.Printf("[SUCCESS] EOD approved (plan frozen): plan=%s reviewer=%s", planID, reviewerID)
	emitPlanEvent(em, EventEodApproved, plan, nil)
	return plan, nil
}

// RejectEOD: EOD dikembalikan untuk rework. Plan balik ke completed
// (task bisa diedit lagi), day_plan_eod_status = rejected sebagai sinyal.
func RejectEOD(db *gorm.DB, em Emitter, planID, reviewerID uuid.UUID, comments string) (*model.DayPlanModel, error) {
	comments = strings.TrimSpace(comments)
	if comments == "" {
		ve := &ValidationError{}
		ve.Add("comments", "komentar review wajib diisi")
		return nil, ve
	}
	now := time.Now()

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.DayPlanModel{}).
			Where("day_plan_id = ? AND day_plan_status = ? AND day_plan_eod_status = ?",
				planID, model.DayPlanStatusPendingEODReview, model.EODStatusSubmitted).
			Updates(map[string]interface{}{
				"day_plan_status":              model.DayPlanStatusCompleted,
				"day_plan_eod_status":          model.EODStatusRejected,
				"day_plan_eod_reviewed_at":     now,
				"day_plan_eod_reviewed_by":     reviewerID,
				"day_plan_eod_review_comments": comments,
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
				Message: "EOD tidak sedang menunggu review",
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

	log.Printf("[SUCCESS] EOD rejected: plan=%s reviewer=%s", planID, reviewerID)
	emitPlanEvent(em, EventEodRejected, plan, nil)
	return plan, nil
}
