// file: internals/features/dayplans/plan/service/timealloc_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTimeAllocation(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"9:05am-12:20pm", true},
		{"9:00am-10:00am", true},
		{"10:00AM-11:00PM", true},      // case-insensitive
		{"9:05am–12:20pm", true},       // en-dash
		{"  9:00am-10:00am  ", true},   // whitespace di-trim
		{"09:00am-10:00am", true},      // leading zero boleh
		{"9am-10am", false},            // menit wajib
		{"9:00-10:00", false},          // am/pm wajib
		{"9:00am 10:00am", false},      // separator salah
		{"9:00am-10:00", false},        // sisi kanan tanpa am/pm
		{"900am-1000am", false},        // tanpa titik dua
		{"", false},
		{"9:00am-10:00am extra", false}, // anchored
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.ok, ValidTimeAllocation(tc.in), "input %q", tc.in)
	}
}
