// file: internals/features/dayplans/plan/service/errors.go
package service

import (
	"errors"
	"fmt"

	"magangku_backend/internals/features/dayplans/plan/model"
)

var (
	ErrPlanNotFound = errors.New("day plan tidak ditemukan")
	ErrTaskNotFound = errors.New("task tidak ditemukan di plan ini")
)

// FieldError: satu pelanggaran validasi pada satu field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError mengumpulkan SEMUA field bermasalah sekaligus supaya
// client bisa menampilkan seluruhnya dalam satu kali render.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validasi gagal: %d field bermasalah", len(e.Fields))
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// OrNil: pakai di akhir rangkaian pengecekan
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// PermissionError: role salah, bukan pemilik, plan belum di-approve,
// atau plan sudah frozen. Terminal, tidak untuk di-retry.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	return e.Message
}

// ConflictError: transisi menabrak state yang sudah bergerak duluan.
// Selalu bawa state terkini supaya caller bisa re-render lalu memutuskan
// sendiri mau retry atau tidak (tidak pernah di-merge diam-diam).
type ConflictError struct {
	Message string
	Current *model.DayPlanModel
}

func (e *ConflictError) Error() string {
	return e.Message
}
