// file: internals/features/dayplans/plan/service/service_test.go
package service

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "magangku_backend/internals/databases"
	"magangku_backend/internals/features/dayplans/plan/dto"
	"magangku_backend/internals/features/dayplans/plan/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	// :memory: = satu database per koneksi; paksa satu koneksi saja
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	// Migrasi yang sama dengan runtime, termasuk partial unique index
	// penjaga slot (owner, tanggal)
	require.NoError(t, database.MigrateDayPlans(db))
	return db
}

// fakeEmitter merekam semua event transisi untuk diinspeksi test
type fakeEmitter struct {
	mu     sync.Mutex
	events []Event
}

func (f *fakeEmitter) Emit(ev Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
}

func (f *fakeEmitter) types() []EventType {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]EventType, 0, len(f.events))
	for _, ev := range f.events {
		out = append(out, ev.Type)
	}
	return out
}

func strPtr(s string) *string { return &s }

func twoTaskRequest() []dto.TaskRequest {
	return []dto.TaskRequest{
		{TaskTitle: "Setup environment", TaskTimeAllocation: "9:00am-10:00am"},
		{TaskTitle: "Review onboarding docs", TaskTimeAllocation: "10:00am-11:00am"},
	}
}

// submitTwoTaskPlan: trainee submit plan dua task
func submitTwoTaskPlan(t *testing.T, db *gorm.DB, em Emitter, ownerID uuid.UUID, date string) *model.DayPlanModel {
	t.Helper()

	draft, err := BuildDraft(date, twoTaskRequest())
	require.NoError(t, err)

	plan, err := SubmitPlan(db, em, ownerID, "trainee", draft, nil)
	require.NoError(t, err)
	require.Equal(t, model.DayPlanStatusInProgress, plan.DayPlanStatus)
	require.Len(t, plan.Tasks, 2)
	return plan
}

// approvedTwoTaskPlan: plan dua task yang sudah di-approve supervisor
func approvedTwoTaskPlan(t *testing.T, db *gorm.DB, em Emitter, ownerID, reviewerID uuid.UUID) *model.DayPlanModel {
	t.Helper()

	plan := submitTwoTaskPlan(t, db, em, ownerID, "2026-03-02")
	approved, err := ApprovePlan(db, em, plan.DayPlanID, reviewerID)
	require.NoError(t, err)
	require.Equal(t, model.DayPlanStatusCompleted, approved.DayPlanStatus)
	return approved
}
