package database

import (
	"log"

	"gorm.io/gorm"

	draftModel "magangku_backend/internals/features/dayplans/draftcache/model"
	planModel "magangku_backend/internals/features/dayplans/plan/model"
)

// MigrateDayPlans: AutoMigrate skema day plan + index penjaga slot.
// AutoMigrate tidak bisa bikin partial unique index, jadi dibuat manual
// lewat raw SQL. Sintaksnya sama di Postgres dan sqlite, jadi harness
// test memakai fungsi yang sama dengan runtime.
func MigrateDayPlans(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&planModel.DayPlanModel{},
		&planModel.TaskModel{},
		&planModel.CheckboxModel{},
		&draftModel.DayPlanDraftModel{},
	); err != nil {
		return err
	}

	// Satu plan aktif per (owner, tanggal). Plan rejected atau yang EOD-nya
	// sudah approved tidak menduduki slot, jadi dikecualikan dari predikat.
	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_day_plans_owner_date_active
		ON day_plans (day_plan_owner_id, day_plan_date)
		WHERE day_plan_status <> 'rejected'
		  AND (day_plan_eod_status IS NULL OR day_plan_eod_status <> 'approved')
	`).Error
}

// MustMigrate: dipanggil dari main saat boot; gagal migrasi = fatal.
func MustMigrate() {
	if err := MigrateDayPlans(DB); err != nil {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}
	log.Println("✅ Migrasi selesai.")
}
