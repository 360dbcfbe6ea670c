// file: internals/features/dayplans/plan/controller/day_plan_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "magangku_backend/internals/databases"
	"magangku_backend/internals/features/dayplans/plan/dto"
	"magangku_backend/internals/features/dayplans/plan/model"
	"magangku_backend/internals/features/dayplans/plan/service"
	authMiddleware "magangku_backend/internals/middlewares/auth"
)

type testEnv struct {
	db         *gorm.DB
	trainee    *fiber.App
	supervisor *fiber.App
	ownerID    uuid.UUID
	reviewerID uuid.UUID
}

func stubIdentity(userID uuid.UUID, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(authMiddleware.LocUserID, userID.String())
		c.Locals(authMiddleware.LocUserRole, role)
		return c.Next()
	}
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.MigrateDayPlans(db))

	env := &testEnv{
		db:         db,
		ownerID:    uuid.New(),
		reviewerID: uuid.New(),
	}
	em := service.NewLogEmitter()

	planCtrl := NewDayPlanController(db, em)
	progCtrl := NewProgressController(db, em)
	env.trainee = fiber.New()
	env.trainee.Use(stubIdentity(env.ownerID, "trainee"))
	env.trainee.Post("/day-plans", planCtrl.Submit)
	env.trainee.Get("/day-plans", planCtrl.List)
	env.trainee.Get("/day-plans/:id", planCtrl.GetByID)
	env.trainee.Put("/day-plans/:id/tasks/:taskId/status", progCtrl.SetTaskStatus)
	env.trainee.Post("/day-plans/:id/eod", progCtrl.SubmitEOD)

	apprCtrl := NewApprovalController(db, em)
	env.supervisor = fiber.New()
	env.supervisor.Use(stubIdentity(env.reviewerID, "supervisor"))
	env.supervisor.Post("/day-plans/:id/approve", apprCtrl.Approve)
	env.supervisor.Post("/day-plans/:id/reject", apprCtrl.Reject)
	env.supervisor.Post("/day-plans/:id/eod/approve", apprCtrl.ApproveEOD)
	env.supervisor.Post("/day-plans/:id/eod/reject", apprCtrl.RejectEOD)

	return env
}

func doJSON(t *testing.T, app *fiber.App, method, url string, body interface{}) (int, map[string]json.RawMessage) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	envelope := map[string]json.RawMessage{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func decodePlan(t *testing.T, raw json.RawMessage) dto.DayPlanResponse {
	t.Helper()
	var plan dto.DayPlanResponse
	require.NoError(t, json.Unmarshal(raw, &plan))
	return plan
}

func submitReq(date string) dto.SubmitDayPlanRequest {
	return dto.SubmitDayPlanRequest{
		DayPlanDate: date,
		Tasks: []dto.TaskRequest{
			{TaskTitle: "Setup environment", TaskTimeAllocation: "9:00am-10:00am"},
			{TaskTitle: "Review onboarding docs", TaskTimeAllocation: "10:00am-11:00am"},
		},
	}
}

func TestSubmitEndpointValidationListsAllFields(t *testing.T) {
	env := newEnv(t)

	// Format waktu tanpa menit ditolak SEBELUM storage
	req := dto.SubmitDayPlanRequest{
		DayPlanDate: "2026-03-02",
		Tasks: []dto.TaskRequest{
			{TaskTitle: "", TaskTimeAllocation: "9am-10am"},
		},
	}
	code, envelope := doJSON(t, env.trainee, fiber.MethodPost, "/day-plans", req)
	require.Equal(t, fiber.StatusBadRequest, code)

	var fields []service.FieldError
	require.NoError(t, json.Unmarshal(envelope["errors"], &fields))
	assert.Len(t, fields, 2)

	// Tidak ada apapun yang menyentuh DB
	var n int64
	require.NoError(t, env.db.Model(&model.DayPlanModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestPlanWorkflowOverHTTP(t *testing.T) {
	env := newEnv(t)

	// Trainee submit plan dua task
	code, envelope := doJSON(t, env.trainee, fiber.MethodPost, "/day-plans", submitReq("2026-03-02"))
	require.Equal(t, fiber.StatusCreated, code)
	plan := decodePlan(t, envelope["data"])
	assert.Equal(t, model.DayPlanStatusInProgress, plan.DayPlanStatus)
	require.Len(t, plan.Tasks, 2)

	// Supervisor approve
	code, envelope = doJSON(t, env.supervisor, fiber.MethodPost, fmt.Sprintf("/day-plans/%s/approve", plan.DayPlanID), nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, model.DayPlanStatusCompleted, decodePlan(t, envelope["data"]).DayPlanStatus)

	// Approve kedua: 409 + state terkini di "current"
	code, envelope = doJSON(t, env.supervisor, fiber.MethodPost, fmt.Sprintf("/day-plans/%s/approve", plan.DayPlanID), nil)
	require.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, model.DayPlanStatusCompleted, decodePlan(t, envelope["current"]).DayPlanStatus)

	// Update progres task lalu submit EOD
	code, _ = doJSON(t, env.trainee, fiber.MethodPut,
		fmt.Sprintf("/day-plans/%s/tasks/%s/status", plan.DayPlanID, plan.Tasks[0].TaskID),
		dto.SetTaskStatusRequest{TaskStatus: "completed"})
	require.Equal(t, fiber.StatusOK, code)

	remarks := "blocked on access"
	code, _ = doJSON(t, env.trainee, fiber.MethodPut,
		fmt.Sprintf("/day-plans/%s/tasks/%s/status", plan.DayPlanID, plan.Tasks[1].TaskID),
		dto.SetTaskStatusRequest{TaskStatus: "pending", TaskRemarks: &remarks})
	require.Equal(t, fiber.StatusOK, code)

	code, envelope = doJSON(t, env.trainee, fiber.MethodPost,
		fmt.Sprintf("/day-plans/%s/eod", plan.DayPlanID),
		dto.SubmitEODRequest{EODOverallRemarks: "day 1 done"})
	require.Equal(t, fiber.StatusOK, code)
	got := decodePlan(t, envelope["data"])
	assert.Equal(t, model.DayPlanStatusPendingEODReview, got.DayPlanStatus)
	require.NotNil(t, got.EODRecord)
	assert.Equal(t, model.EODStatusSubmitted, got.EODRecord.EODStatus)

	// Approve EOD: plan beku
	code, envelope = doJSON(t, env.supervisor, fiber.MethodPost, fmt.Sprintf("/day-plans/%s/eod/approve", plan.DayPlanID), nil)
	require.Equal(t, fiber.StatusOK, code)
	frozen := decodePlan(t, envelope["data"])
	assert.True(t, frozen.DayPlanFrozen)
	assert.Equal(t, model.EODStatusApproved, frozen.EODRecord.EODStatus)

	// Mutasi setelah beku: 403
	code, _ = doJSON(t, env.trainee, fiber.MethodPut,
		fmt.Sprintf("/day-plans/%s/tasks/%s/status", plan.DayPlanID, plan.Tasks[0].TaskID),
		dto.SetTaskStatusRequest{TaskStatus: "completed"})
	assert.Equal(t, fiber.StatusForbidden, code)

	code, _ = doJSON(t, env.trainee, fiber.MethodPost,
		fmt.Sprintf("/day-plans/%s/eod", plan.DayPlanID),
		dto.SubmitEODRequest{EODOverallRemarks: "again"})
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestListReturnsPaginationMetadata(t *testing.T) {
	env := newEnv(t)

	for _, date := range []string{"2026-03-02", "2026-03-03", "2026-03-04"} {
		code, _ := doJSON(t, env.trainee, fiber.MethodPost, "/day-plans", submitReq(date))
		require.Equal(t, fiber.StatusCreated, code)
	}

	code, envelope := doJSON(t, env.trainee, fiber.MethodGet, "/day-plans?page=1&per_page=2", nil)
	require.Equal(t, fiber.StatusOK, code)

	var list dto.ListDayPlanResponse
	require.NoError(t, json.Unmarshal(envelope["data"], &list))
	require.Len(t, list.Data, 2)
	assert.EqualValues(t, 3, list.Pagination.Total)
	assert.Equal(t, 2, list.Pagination.TotalPages)
	assert.Equal(t, 2, list.Pagination.Count)
	assert.True(t, list.Pagination.HasNext)
	assert.False(t, list.Pagination.HasPrev)
}

func TestGetByIDHidesOtherOwnersPlans(t *testing.T) {
	env := newEnv(t)

	code, envelope := doJSON(t, env.trainee, fiber.MethodPost, "/day-plans", submitReq("2026-03-02"))
	require.Equal(t, fiber.StatusCreated, code)
	plan := decodePlan(t, envelope["data"])

	// Trainee lain tidak boleh lihat
	other := fiber.New()
	other.Use(stubIdentity(uuid.New(), "trainee"))
	em := service.NewLogEmitter()
	ctrl := NewDayPlanController(env.db, em)
	other.Get("/day-plans/:id", ctrl.GetByID)

	code, _ = doJSON(t, other, fiber.MethodGet, fmt.Sprintf("/day-plans/%s", plan.DayPlanID), nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	// Id acak: 404
	code, _ = doJSON(t, env.trainee, fiber.MethodGet, fmt.Sprintf("/day-plans/%s", uuid.New()), nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}
