// file: internals/features/dayplans/plan/model/day_plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Status enums
   ========================= */

type DayPlanStatus string

const (
	DayPlanStatusInProgress       DayPlanStatus = "in_progress"        // menunggu approval supervisor
	DayPlanStatusCompleted        DayPlanStatus = "completed"          // disetujui, task boleh dieksekusi
	DayPlanStatusRejected         DayPlanStatus = "rejected"           // ditolak di tahap approval awal
	DayPlanStatusPendingEODReview DayPlanStatus = "pending_eod_review" // EOD sudah disubmit, menunggu review
)

func (s DayPlanStatus) IsValid() bool {
	switch s {
	case DayPlanStatusInProgress, DayPlanStatusCompleted, DayPlanStatusRejected, DayPlanStatusPendingEODReview:
		return true
	}
	return false
}

type EODStatus string

const (
	EODStatusSubmitted EODStatus = "submitted"
	EODStatusApproved  EODStatus = "approved"
	EODStatusRejected  EODStatus = "rejected"
)

func (s EODStatus) IsValid() bool {
	switch s {
	case EODStatusSubmitted, EODStatusApproved, EODStatusRejected:
		return true
	}
	return false
}

/* =========================
   Model
   ========================= */

// DayPlanModel: satu rencana harian milik satu trainee untuk satu tanggal.
// Record EOD menempel 1:1 di baris yang sama (kolom day_plan_eod_*) karena
// semantiknya overwrite saat resubmit, bukan append.
//
// Selain index biasa di bawah, migrasi (database.MigrateDayPlans) membuat
// partial unique index penjaga slot aktif — AutoMigrate tidak bisa:
//
//	CREATE UNIQUE INDEX IF NOT EXISTS uq_day_plans_owner_date_active
//	ON day_plans (day_plan_owner_id, day_plan_date)
//	WHERE day_plan_status <> 'rejected'
//	  AND (day_plan_eod_status IS NULL OR day_plan_eod_status <> 'approved')
type DayPlanModel struct {
	DayPlanID            uuid.UUID     `gorm:"column:day_plan_id;primaryKey;type:uuid" json:"day_plan_id"`
	DayPlanOwnerID       uuid.UUID     `gorm:"column:day_plan_owner_id;type:uuid;not null;index:idx_day_plans_owner_date" json:"day_plan_owner_id"`
	DayPlanDate          string        `gorm:"column:day_plan_date;type:date;not null;index:idx_day_plans_owner_date" json:"day_plan_date"`
	DayPlanStatus        DayPlanStatus `gorm:"column:day_plan_status;type:varchar(24);not null;default:in_progress" json:"day_plan_status"`
	DayPlanCreatedByRole string        `gorm:"column:day_plan_created_by_role;type:varchar(16);not null;default:trainee" json:"day_plan_created_by_role"`
	DayPlanSubmittedAt   time.Time     `gorm:"column:day_plan_submitted_at;not null" json:"day_plan_submitted_at"`

	// Hasil approval/rejection tahap awal (komentar bisa dibaca trainee)
	DayPlanApprovedBy         *uuid.UUID `gorm:"column:day_plan_approved_by;type:uuid" json:"day_plan_approved_by,omitempty"`
	DayPlanRejectedBy         *uuid.UUID `gorm:"column:day_plan_rejected_by;type:uuid" json:"day_plan_rejected_by,omitempty"`
	DayPlanRejectionComments  *string    `gorm:"column:day_plan_rejection_comments" json:"day_plan_rejection_comments,omitempty"`

	// Record EOD (nullable, overwrite saat resubmit)
	DayPlanEODStatus         *EODStatus `gorm:"column:day_plan_eod_status;type:varchar(16)" json:"day_plan_eod_status,omitempty"`
	DayPlanEODOverallRemarks *string    `gorm:"column:day_plan_eod_overall_remarks" json:"day_plan_eod_overall_remarks,omitempty"`
	DayPlanEODSubmittedAt    *time.Time `gorm:"column:day_plan_eod_submitted_at" json:"day_plan_eod_submitted_at,omitempty"`
	DayPlanEODReviewedAt     *time.Time `gorm:"column:day_plan_eod_reviewed_at" json:"day_plan_eod_reviewed_at,omitempty"`
	DayPlanEODReviewedBy     *uuid.UUID `gorm:"column:day_plan_eod_reviewed_by;type:uuid" json:"day_plan_eod_reviewed_by,omitempty"`
	DayPlanEODReviewComments *string    `gorm:"column:day_plan_eod_review_comments" json:"day_plan_eod_review_comments,omitempty"`

	DayPlanCreatedAt time.Time `gorm:"column:day_plan_created_at;autoCreateTime" json:"day_plan_created_at"`
	DayPlanUpdatedAt time.Time `gorm:"column:day_plan_updated_at;autoUpdateTime" json:"day_plan_updated_at"`

	Tasks []TaskModel `gorm:"foreignKey:TaskDayPlanID;references:DayPlanID" json:"tasks,omitempty"`
}

func (DayPlanModel) TableName() string {
	return "day_plans"
}

// IsFrozen: plan final setelah EOD di-approve. Tidak ada mutasi apapun lagi.
func (m *DayPlanModel) IsFrozen() bool {
	return m.DayPlanEODStatus != nil && *m.DayPlanEODStatus == EODStatusApproved
}

// IsActive: masih menduduki slot (owner, date). Plan rejected atau frozen
// tidak menghalangi submit plan baru di tanggal yang sama.
func (m *DayPlanModel) IsActive() bool {
	return m.DayPlanStatus != DayPlanStatusRejected && !m.IsFrozen()
}

// TasksEditable: status task boleh diubah hanya saat plan sudah di-approve
// dan EOD belum terkirim (atau terkirim tapi ditolak).
func (m *DayPlanModel) TasksEditable() bool {
	if m.DayPlanStatus != DayPlanStatusCompleted {
		return false
	}
	return m.DayPlanEODStatus == nil || *m.DayPlanEODStatus == EODStatusRejected
}
