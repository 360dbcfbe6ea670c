// file: internals/features/dayplans/draftcache/model/draft_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DayPlanDraftModel: buffer authoring sementara per owner, supaya trainee
// bisa lanjut nulis draft lintas sesi SEBELUM submit pertama.
// Payload opaque (tidak divalidasi) dan TIDAK PERNAH jadi source of truth —
// rekonsiliasi dengan plan in_progress dilakukan client via timestamp.
type DayPlanDraftModel struct {
	DraftID            uuid.UUID      `gorm:"column:draft_id;primaryKey;type:uuid" json:"draft_id"`
	DraftOwnerID       uuid.UUID      `gorm:"column:draft_owner_id;type:uuid;not null;unique" json:"draft_owner_id"`
	DraftPayload       datatypes.JSON `gorm:"column:draft_payload" json:"draft_payload"`
	DraftClientSavedAt *time.Time     `gorm:"column:draft_client_saved_at" json:"draft_client_saved_at,omitempty"`
	DraftUpdatedAt     time.Time      `gorm:"column:draft_updated_at;autoUpdateTime" json:"draft_updated_at"`
}

func (DayPlanDraftModel) TableName() string {
	return "day_plan_drafts"
}
