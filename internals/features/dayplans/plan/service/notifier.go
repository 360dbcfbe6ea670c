// file: internals/features/dayplans/plan/service/notifier.go
package service

import (
	"log"
	"time"

	"github.com/google/uuid"

	"magangku_backend/internals/features/dayplans/plan/model"
)

type EventType string

const (
	EventPlanSubmitted     EventType = "PlanSubmitted"
	EventPlanApproved      EventType = "PlanApproved"
	EventPlanRejected      EventType = "PlanRejected"
	EventTaskStatusChanged EventType = "TaskStatusChanged"
	EventEodSubmitted      EventType = "EodSubmitted"
	EventEodApproved       EventType = "EodApproved"
	EventEodRejected       EventType = "EodRejected"
)

// Event: satu notifikasi abstrak per transisi. Pengiriman (email/push/in-app)
// sepenuhnya urusan collaborator di luar core ini.
type Event struct {
	Type          EventType           `json:"type"`
	PlanID        uuid.UUID           `json:"plan_id"`
	OwnerID       uuid.UUID           `json:"owner_id"`
	DayPlanStatus model.DayPlanStatus `json:"day_plan_status"`
	EODStatus     *model.EODStatus    `json:"eod_status,omitempty"`
	TaskID        *uuid.UUID          `json:"task_id,omitempty"`
	At            time.Time           `json:"at"`
}

type Emitter interface {
	Emit(ev Event)
}

// LogEmitter: default, cukup log. Integrasi delivery tinggal implement
// interface yang sama.
type LogEmitter struct{}

func NewLogEmitter() Emitter {
	return LogEmitter{}
}

func (LogEmitter) Emit(ev Event) {
	if ev.EODStatus != nil {
		log.Printf("[NOTIF] %s plan=%s owner=%s status=%s eod=%s", ev.Type, ev.PlanID, ev.OwnerID, ev.DayPlanStatus, *ev.EODStatus)
		return
	}
	log.Printf("[NOTIF] %s plan=%s owner=%s status=%s", ev.Type, ev.PlanID, ev.OwnerID, ev.DayPlanStatus)
}

func emitPlanEvent(em Emitter, t EventType, m *model.DayPlanModel, taskID *uuid.UUID) {
	if em == nil {
		return
	}
	em.Emit(Event{
		Type:          t,
		PlanID:        m.DayPlanID,
		OwnerID:       m.DayPlanOwnerID,
		DayPlanStatus: m.DayPlanStatus,
		EODStatus:     m.DayPlanEODStatus,
		TaskID:        taskID,
		At:            time.Now(),
	})
}
