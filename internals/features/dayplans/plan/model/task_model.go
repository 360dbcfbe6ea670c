// file: internals/features/dayplans/plan/model/task_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusUnset      TaskStatus = "unset"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusPending    TaskStatus = "pending"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusUnset, TaskStatusCompleted, TaskStatusInProgress, TaskStatusPending:
		return true
	}
	return false
}

// RequiresRemarks: in_progress & pending wajib ada remarks non-kosong
func (s TaskStatus) RequiresRemarks() bool {
	return s == TaskStatusInProgress || s == TaskStatusPending
}

// TaskModel: id stabil, di-assign sekali saat dibuat. Urutan tampil pakai
// kolom posisi terpisah supaya reorder tidak mengubah identitas.
type TaskModel struct {
	TaskID             uuid.UUID  `gorm:"column:task_id;primaryKey;type:uuid" json:"task_id"`
	TaskDayPlanID      uuid.UUID  `gorm:"column:task_day_plan_id;type:uuid;not null;index" json:"task_day_plan_id"`
	TaskPosition       int        `gorm:"column:task_position;not null" json:"task_position"`
	TaskTitle          string     `gorm:"column:task_title;not null" json:"task_title"`
	TaskDescription    *string    `gorm:"column:task_description" json:"task_description,omitempty"`
	TaskTimeAllocation string     `gorm:"column:task_time_allocation;not null" json:"task_time_allocation"`
	TaskStatus         TaskStatus `gorm:"column:task_status;type:varchar(16);not null;default:unset" json:"task_status"`
	TaskRemarks        *string    `gorm:"column:task_remarks" json:"task_remarks,omitempty"`

	TaskCreatedAt time.Time `gorm:"column:task_created_at;autoCreateTime" json:"task_created_at"`
	TaskUpdatedAt time.Time `gorm:"column:task_updated_at;autoUpdateTime" json:"task_updated_at"`

	Checkboxes []CheckboxModel `gorm:"foreignKey:CheckboxTaskID;references:TaskID" json:"checkboxes,omitempty"`
}

func (TaskModel) TableName() string {
	return "day_plan_tasks"
}

// CheckboxModel: selalu merujuk task via task_id (FK stabil),
// tidak pernah via posisi array.
type CheckboxModel struct {
	CheckboxID             uuid.UUID `gorm:"column:checkbox_id;primaryKey;type:uuid" json:"checkbox_id"`
	CheckboxTaskID         uuid.UUID `gorm:"column:checkbox_task_id;type:uuid;not null;index" json:"checkbox_task_id"`
	CheckboxPosition       int       `gorm:"column:checkbox_position;not null" json:"checkbox_position"`
	CheckboxLabel          string    `gorm:"column:checkbox_label;not null" json:"checkbox_label"`
	CheckboxChecked        bool      `gorm:"column:checkbox_checked;not null;default:false" json:"checkbox_checked"`
	CheckboxTimeAllocation string    `gorm:"column:checkbox_time_allocation" json:"checkbox_time_allocation"`

	CheckboxCreatedAt time.Time `gorm:"column:checkbox_created_at;autoCreateTime" json:"checkbox_created_at"`
}

func (CheckboxModel) TableName() string {
	return "day_plan_checkboxes"
}
