// file: internals/features/dayplans/plan/service/approval_gate.go
package service

import (
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/dayplans/plan/model"
)

// ApprovePlan: supervisor menerima plan yang baru disubmit.
// Guarded update (WHERE status pre-transisi) = compare-and-swap per baris;
// pemanggil kedua yang kalah balapan dapat Conflict + state terkini.
func ApprovePlan(db *gorm.DB, em Emitter, planID, reviewerID uuid.UUID) (*model.DayPlanModel, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.DayPlanModel{}).
			Where("day_plan_id = ? AND day_plan_status = ?", planID, model.DayPlanStatusInProgress).
			Updates(map[string]interface{}{
				"day_plan_status":      model.DayPlanStatusCompleted,
				"day_plan_approved_by": reviewerID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			cur, err := GetPlanByID(tx, planID)
			if err != nil {
				return err // termasuk ErrPlanNotFound
			}
			return &ConflictError{
				Message: "plan tidak lagi menunggu approval",
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

	log.Printf("[SUCCESS] DayPlan approved: id=%s reviewer=%s", planID, reviewerID)
	emitPlanEvent(em, EventPlanApproved, plan, nil)
	return plan, nil
}

// RejectPlan: supervisor menolak plan; komentar wajib dan bisa dibaca
// trainee untuk perbaikan sebelum resubmit.
func RejectPlan(db *gorm.DB, em Emitter, planID, reviewerID uuid.UUID, comments string) (*model.DayPlanModel, error) {
	comments = strings.TrimSpace(comments)
	if comments == "" {
		ve := &ValidationError{}
		ve.Add("comments", "komentar rejection wajib diisi")
		return nil, ve
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.DayPlanModel{}).
			Where("day_plan_id = ? AND day_plan_status = ?", planID, model.DayPlanStatusInProgress).
			Updates(map[string]interface{}{
				"day_plan_status":             model.DayPlanStatusRejected,
				"day_plan_rejected_by":        reviewerID,
				"day_plan_rejection_comments": comments,
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
				Message: "plan tidak lagi menunggu approval",
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

	log.Printf("[SUCCESS] DayPlan rejected: id=%s reviewer=%s", planID, reviewerID)
	emitPlanEvent(em, EventPlanRejected, plan, nil)
	return plan, nil
}
