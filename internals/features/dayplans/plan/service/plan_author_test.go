// file: internals/features/dayplans/plan/service/plan_author_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magangku_backend/internals/features/dayplans/plan/dto"
	"magangku_backend/internals/features/dayplans/plan/model"
)

func TestBuildDraftAssignsStableIDs(t *testing.T) {
	draft, err := BuildDraft("2026-03-02", []dto.TaskRequest{
		{
			TaskTitle:          "Deploy staging",
			TaskTimeAllocation: "9:00am-10:30am",
			Checkboxes: []dto.CheckboxRequest{
				{CheckboxLabel: "merge PR", CheckboxChecked: true, CheckboxTimeAllocation: "9:00am-9:30am"},
				{CheckboxLabel: "smoke test", CheckboxChecked: false},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, draft.Tasks, 1)

	task := draft.Tasks[0]
	assert.NotEqual(t, uuid.Nil, task.TaskID)
	require.Len(t, task.Checkboxes, 2)
	for _, b := range task.Checkboxes {
		assert.NotEqual(t, uuid.Nil, b.CheckboxID)
		// Checkbox merujuk task via id stabil, bukan posisi
		assert.Equal(t, task.TaskID, b.TaskID)
	}
}

func TestBuildDraftCollectsEveryOffendingField(t *testing.T) {
	_, err := BuildDraft("bukan-tanggal", []dto.TaskRequest{
		{
			TaskTitle:          "",            // title kosong
			TaskTimeAllocation: "9am-10am",    // menit hilang
			Checkboxes: []dto.CheckboxRequest{
				{CheckboxLabel: "", CheckboxChecked: true, CheckboxTimeAllocation: "jam 9"}, // dua pelanggaran
				{CheckboxLabel: "", CheckboxChecked: false},                                 // tidak dicentang: bebas
			},
		},
		{
			TaskTitle:          "Valid task",
			TaskTimeAllocation: "9:00am-10:00am",
		},
	})
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok, "harus *ValidationError, dapat %T", err)

	fields := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{
		"day_plan_date",
		"tasks[0].task_title",
		"tasks[0].task_time_allocation",
		"tasks[0].checkboxes[0].checkbox_label",
		"tasks[0].checkboxes[0].checkbox_time_allocation",
	}, fields)
}

func TestBuildDraftRejectsEmptyTaskList(t *testing.T) {
	_, err := BuildDraft("2026-03-02", nil)
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "tasks", ve.Fields[0].Field)
}

func TestLoadForEditOnlyBeforeApproval(t *testing.T) {
	db := newTestDB(t)
	em := &fakeEmitter{}
	ownerID := uuid.New()
	otherID := uuid.New()
	reviewerID := uuid.New()

	plan := submitTwoTaskPlan(t, db, em, ownerID, "2026-03-02")

	// in_progress: boleh dimuat untuk diedit
	draft, err := LoadForEdit(db, plan.DayPlanID, ownerID)
	require.NoError(t, err)
	require.Len(t, draft.Tasks, 2)
	assert.Equal(t, plan.Tasks[0].TaskID, draft.Tasks[0].TaskID)

	// bukan pemilik: PermissionDenied
	_, err = LoadForEdit(db, plan.DayPlanID, otherID)
	var pe *PermissionError
	require.ErrorAs(t, err, &pe)

	// setelah approve: Conflict + state terkini
	_, err = ApprovePlan(db, em, plan.DayPlanID, reviewerID)
	require.NoError(t, err)

	_, err = LoadForEdit(db, plan.DayPlanID, ownerID)
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	require.NotNil(t, ce.Current)
	assert.Equal(t, model.DayPlanStatusCompleted, ce.Current.DayPlanStatus)
}
