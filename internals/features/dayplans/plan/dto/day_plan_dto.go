// file: internals/features/dayplans/plan/dto/day_plan_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"magangku_backend/internals/features/dayplans/plan/model"
	helper "magangku_backend/internals/helpers"
)

/* =========================
   Request DTO
   ========================= */

type CheckboxRequest struct {
	CheckboxLabel          string `json:"checkbox_label"`
	CheckboxChecked        bool   `json:"checkbox_checked"`
	CheckboxTimeAllocation string `json:"checkbox_time_allocation"`
}

type TaskRequest struct {
	TaskTitle          string            `json:"task_title"`
	TaskDescription    *string           `json:"task_description,omitempty"`
	TaskTimeAllocation string            `json:"task_time_allocation"`
	Checkboxes         []CheckboxRequest `json:"checkboxes,omitempty"`
}

// SubmitDayPlanRequest: day_plan_id diisi hanya untuk jalur edit-and-resubmit
// (plan in_progress yang dimuat ulang, atau plan rejected yang diperbaiki).
// Validasi per-field task dikerjakan PlanAuthor supaya SEMUA pelanggaran
// terkumpul, bukan cuma yang pertama.
type SubmitDayPlanRequest struct {
	DayPlanID   *uuid.UUID    `json:"day_plan_id,omitempty"`
	DayPlanDate string        `json:"day_plan_date" validate:"required"`
	Tasks       []TaskRequest `json:"tasks" validate:"required"`
}

type SetTaskStatusRequest struct {
	TaskStatus  string  `json:"task_status" validate:"required,oneof=completed in_progress pending"`
	TaskRemarks *string `json:"task_remarks,omitempty"`
}

type SubmitEODRequest struct {
	EODOverallRemarks string `json:"eod_overall_remarks"`
}

type ReviewCommentRequest struct {
	Comments string `json:"comments" validate:"required"`
}

/* =========================
   Response DTO
   ========================= */

type CheckboxResponse struct {
	CheckboxID             uuid.UUID `json:"checkbox_id"`
	CheckboxTaskID         uuid.UUID `json:"checkbox_task_id"`
	CheckboxLabel          string    `json:"checkbox_label"`
	CheckboxChecked        bool      `json:"checkbox_checked"`
	CheckboxTimeAllocation string    `json:"checkbox_time_allocation"`
}

type TaskResponse struct {
	TaskID             uuid.UUID          `json:"task_id"`
	TaskTitle          string             `json:"task_title"`
	TaskDescription    *string            `json:"task_description,omitempty"`
	TaskTimeAllocation string             `json:"task_time_allocation"`
	TaskStatus         model.TaskStatus   `json:"task_status"`
	TaskRemarks        *string            `json:"task_remarks,omitempty"`
	Checkboxes         []CheckboxResponse `json:"checkboxes"`
}

type EODRecordResponse struct {
	EODStatus         model.EODStatus `json:"eod_status"`
	EODOverallRemarks *string         `json:"eod_overall_remarks,omitempty"`
	EODSubmittedAt    *time.Time      `json:"eod_submitted_at,omitempty"`
	EODReviewedAt     *time.Time      `json:"eod_reviewed_at,omitempty"`
	EODReviewComments *string         `json:"eod_review_comments,omitempty"`
}

type DayPlanResponse struct {
	DayPlanID                uuid.UUID           `json:"day_plan_id"`
	DayPlanOwnerID           uuid.UUID           `json:"day_plan_owner_id"`
	DayPlanDate              string              `json:"day_plan_date"`
	DayPlanStatus            model.DayPlanStatus `json:"day_plan_status"`
	DayPlanCreatedByRole     string              `json:"day_plan_created_by_role"`
	DayPlanSubmittedAt       time.Time           `json:"day_plan_submitted_at"`
	DayPlanRejectionComments *string             `json:"day_plan_rejection_comments,omitempty"`
	DayPlanFrozen            bool                `json:"day_plan_frozen"`
	EODRecord                *EODRecordResponse  `json:"eod_record,omitempty"`
	Tasks                    []TaskResponse      `json:"tasks"`
	DayPlanUpdatedAt         time.Time           `json:"day_plan_updated_at"`
}

type ListDayPlanResponse struct {
	Data       []DayPlanResponse `json:"data"`
	Pagination helper.Pagination `json:"pagination"`
}

/* =========================
   Mapper
   ========================= */

func FromTaskModel(t *model.TaskModel) TaskResponse {
	boxes := make([]CheckboxResponse, 0, len(t.Checkboxes))
	for i := range t.Checkboxes {
		b := t.Checkboxes[i]
		boxes = append(boxes, CheckboxResponse{
			CheckboxID:             b.CheckboxID,
			CheckboxTaskID:         b.CheckboxTaskID,
			CheckboxLabel:          b.CheckboxLabel,
			CheckboxChecked:        b.CheckboxChecked,
			CheckboxTimeAllocation: b.CheckboxTimeAllocation,
		})
	}
	return TaskResponse{
		TaskID:             t.TaskID,
		TaskTitle:          t.TaskTitle,
		TaskDescription:    t.TaskDescription,
		TaskTimeAllocation: t.TaskTimeAllocation,
		TaskStatus:         t.TaskStatus,
		TaskRemarks:        t.TaskRemarks,
		Checkboxes:         boxes,
	}
}

func FromDayPlanModel(m *model.DayPlanModel) DayPlanResponse {
	tasks := make([]TaskResponse, 0, len(m.Tasks))
	for i := range m.Tasks {
		tasks = append(tasks, FromTaskModel(&m.Tasks[i]))
	}

	var eod *EODRecordResponse
	if m.DayPlanEODStatus != nil {
		eod = &EODRecordResponse{
			EODStatus:         *m.DayPlanEODStatus,
			EODOverallRemarks: m.DayPlanEODOverallRemarks,
			EODSubmittedAt:    m.DayPlanEODSubmittedAt,
			EODReviewedAt:     m.DayPlanEODReviewedAt,
			EODReviewComments: m.DayPlanEODReviewComments,
		}
	}

	return DayPlanResponse{
		DayPlanID:                m.DayPlanID,
		DayPlanOwnerID:           m.DayPlanOwnerID,
		DayPlanDate:              m.DayPlanDate,
		DayPlanStatus:            m.DayPlanStatus,
		DayPlanCreatedByRole:     m.DayPlanCreatedByRole,
		DayPlanSubmittedAt:       m.DayPlanSubmittedAt,
		DayPlanRejectionComments: m.DayPlanRejectionComments,
		DayPlanFrozen:            m.IsFrozen(),
		EODRecord:                eod,
		Tasks:                    tasks,
		DayPlanUpdatedAt:         m.DayPlanUpdatedAt,
	}
}
