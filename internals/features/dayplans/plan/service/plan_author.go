// file: internals/features/dayplans/plan/service/plan_author.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/features/dayplans/plan/dto"
	"magangku_backend/internals/features/dayplans/plan/model"
)

/* =========================
   Draft (buffer authoring, belum tersimpan)
   ========================= */

type DraftCheckbox struct {
	CheckboxID     uuid.UUID
	TaskID         uuid.UUID // selalu id stabil, TIDAK PERNAH posisi array
	Label          string
	Checked        bool
	TimeAllocation string
}

type DraftTask struct {
	TaskID         uuid.UUID
	Title          string
	Description    *string
	TimeAllocation string
	Checkboxes     []DraftCheckbox
}

type DraftPlan struct {
	Date  string
	Tasks []DraftTask
}

/* =========================
   PlanAuthor
   ========================= */

// BuildDraft memvalidasi seluruh isi plan dan MENGUMPULKAN semua pelanggaran,
// bukan berhenti di yang pertama. Id task & checkbox di-assign di sini,
// sekali, dan dibawa terus sampai persist.
func BuildDraft(date string, tasks []dto.TaskRequest) (*DraftPlan, error) {
	ve := &ValidationError{}

	date = strings.TrimSpace(date)
	if date == "" {
		ve.Add("day_plan_date", "tanggal wajib diisi")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		ve.Add("day_plan_date", "format tanggal harus YYYY-MM-DD")
	}

	if len(tasks) == 0 {
		ve.Add("tasks", "plan harus punya minimal satu task")
	}

	draft := &DraftPlan{Date: date, Tasks: make([]DraftTask, 0, len(tasks))}

	for i, t := range tasks {
		taskID := uuid.New()

		title := strings.TrimSpace(t.TaskTitle)
		if title == "" {
			ve.Add(fmt.Sprintf("tasks[%d].task_title", i), "judul task wajib diisi")
		}
		if !ValidTimeAllocation(t.TaskTimeAllocation) {
			ve.Add(fmt.Sprintf("tasks[%d].task_time_allocation", i), "format alokasi waktu harus seperti 9:05am-12:20pm")
		}

		boxes := make([]DraftCheckbox, 0, len(t.Checkboxes))
		for j, b := range t.Checkboxes {
			label := strings.TrimSpace(b.CheckboxLabel)
			// Rule ketat hanya untuk checkbox yang dicentang
			if b.CheckboxChecked {
				if label == "" {
					ve.Add(fmt.Sprintf("tasks[%d].checkboxes[%d].checkbox_label", i, j), "label checkbox tercentang wajib diisi")
				}
				if !ValidTimeAllocation(b.CheckboxTimeAllocation) {
					ve.Add(fmt.Sprintf("tasks[%d].checkboxes[%d].checkbox_time_allocation", i, j), "format alokasi waktu harus seperti 9:05am-12:20pm")
				}
			}
			boxes = append(boxes, DraftCheckbox{
				CheckboxID:     uuid.New(),
				TaskID:         taskID,
				Label:          label,
				Checked:        b.CheckboxChecked,
				TimeAllocation: strings.TrimSpace(b.CheckboxTimeAllocation),
			})
		}

		draft.Tasks = append(draft.Tasks, DraftTask{
			TaskID:         taskID,
			Title:          title,
			Description:    t.TaskDescription,
			TimeAllocation: strings.TrimSpace(t.TaskTimeAllocation),
			Checkboxes:     boxes,
		})
	}

	if err := ve.OrNil(); err != nil {
		return nil, err
	}
	return draft, nil
}

// LoadForEdit memuat ulang plan tersimpan ke buffer authoring.
// Hanya boleh untuk plan in_progress (edit sebelum approval) atau rejected
// (perbaiki lalu resubmit). Submit berikutnya menimpa record yang sama,
// bukan bikin duplikat.
func LoadForEdit(db *gorm.DB, planID, ownerID uuid.UUID) (*DraftPlan, error) {
	plan, err := GetPlanByID(db, planID)
	if err != nil {
		return nil, err
	}
	if plan.DayPlanOwnerID != ownerID {
		return nil, &PermissionError{Message: "plan ini bukan milik kamu"}
	}
	if plan.DayPlanStatus != model.DayPlanStatusInProgress && plan.DayPlanStatus != model.DayPlanStatusRejected {
		return nil, &ConflictError{
			Message: "plan sudah di-approve, tidak bisa diedit lagi",
			Current: plan,
		}
	}

	draft := &DraftPlan{Date: plan.DayPlanDate, Tasks: make([]DraftTask, 0, len(plan.Tasks))}
	for i := range plan.Tasks {
		t := plan.Tasks[i]
		boxes := make([]DraftCheckbox, 0, len(t.Checkboxes))
		for j := range t.Checkboxes {
			b := t.Checkboxes[j]
			boxes = append(boxes, DraftCheckbox{
				CheckboxID:     b.CheckboxID,
				TaskID:         b.CheckboxTaskID,
				Label:          b.CheckboxLabel,
				Checked:        b.CheckboxChecked,
				TimeAllocation: b.CheckboxTimeAllocation,
			})
		}
		draft.Tasks = append(draft.Tasks, DraftTask{
			TaskID:         t.TaskID,
			Title:          t.TaskTitle,
			Description:    t.TaskDescription,
			TimeAllocation: t.TaskTimeAllocation,
			Checkboxes:     boxes,
		})
	}
	return draft, nil
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
