package models

import (
	"reflect"
	"testing"
)

func TestBookingActions(t *testing.T) {
	cases := []struct {
		status, role string
		want         []string
	}{
		{BookingPending, RoleCleaner, []string{BookingConfirmed, BookingCancelled}},
		{BookingConfirmed, RoleCleaner, []string{BookingInProgress, BookingCancelled}},
		{BookingInProgress, RoleCleaner, []string{BookingCompleted}},
		{BookingCompleted, RoleCleaner, nil},
		{BookingCancelled, RoleCleaner, nil},

		{BookingPending, RoleCustomer, []string{BookingCancelled}},
		{BookingConfirmed, RoleCustomer, []string{BookingCancelled}},
		{BookingInProgress, RoleCustomer, nil},
		{BookingCompleted, RoleCustomer, []string{"pay", "review"}},
		{BookingCancelled, RoleCustomer, nil},

		{BookingPending, "admin", nil},
		{"unknown", RoleCustomer, nil},
	}

	for _, tc := range cases {
		got := BookingActions(tc.status, tc.role)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("BookingActions(%q, %q) = %v, want %v", tc.status, tc.role, got, tc.want)
		}
	}
}

func TestValidCategoryAndPriceType(t *testing.T) {
	for _, c := range []string{"regular", "deep", "move_in_out", "office", "specialized"} {
		if !ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = false", c)
		}
	}
	if ValidCategory("window") {
		t.Error("ValidCategory accepted an unknown category")
	}

	for _, p := range []string{"flat", "per_hour", "per_sqft"} {
		if !ValidPriceType(p) {
			t.Errorf("ValidPriceType(%q) = false", p)
		}
	}
	if ValidPriceType("hourly") {
		t.Error("ValidPriceType accepted an unknown price type")
	}
}
