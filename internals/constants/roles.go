package constants

import "fmt"

// Role dasar aplikasi magang
const (
	RoleTrainee    = "trainee"
	RoleSupervisor = "supervisor"
	RoleAdmin      = "admin"
)

// Template pesan error role
const (
	ErrOnlyTraineesCanAccess    = "❌ Hanya trainee yang boleh mengakses fitur %s."
	ErrOnlySupervisorsCanAccess = "❌ Hanya supervisor atau admin yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorTrainee(feature string) string {
	return fmt.Sprintf(ErrOnlyTraineesCanAccess, feature)
}

func RoleErrorSupervisor(feature string) string {
	return fmt.Sprintf(ErrOnlySupervisorsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	TraineeOnly = []string{
		RoleTrainee,
	}

	SupervisorAndAbove = []string{
		RoleSupervisor,
		RoleAdmin,
	}
)
