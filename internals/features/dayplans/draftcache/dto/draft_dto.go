// file: internals/features/dayplans/draftcache/dto/draft_dto.go
package dto

import (
	"time"

	"gorm.io/datatypes"
)

type SaveDraftRequest struct {
	DraftPayload       datatypes.JSON `json:"draft_payload" validate:"required"`
	DraftClientSavedAt *time.Time     `json:"draft_client_saved_at,omitempty"`
}

// GetDraftResponse membawa draft + timestamp plan in_progress milik owner
// (kalau ada) supaya client bisa membandingkan mana yang lebih baru.
// Server tidak pernah mencoba merge dua sumber itu.
type GetDraftResponse struct {
	Draft               interface{} `json:"draft"`
	ActivePlanID        interface{} `json:"active_plan_id,omitempty"`
	ActivePlanUpdatedAt *time.Time  `json:"active_plan_updated_at,omitempty"`
}
