package models

import "testing"

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderConfirmed, OrderCompleted, OrderCancelled} {
		if !ValidOrderStatus(s) {
			t.Fatalf("%q geçerli olmalı", s)
		}
	}
	for _, s := range []OrderStatus{"", "burnt", "Pending", "done"} {
		if ValidOrderStatus(s) {
			t.Fatalf("%q geçersiz olmalı", s)
		}
	}
}

func TestValidBookingStatus(t *testing.T) {
	for _, s := range []BookingStatus{
		BookingPending, BookingConfirmed, BookingCheckedIn,
		BookingCompleted, BookingCancelled, BookingNoShow,
	} {
		if !ValidBookingStatus(s) {
			t.Fatalf("%q geçerli olmalı", s)
		}
	}
	for _, s := range []BookingStatus{"", "checked_in", "noshow", "seated"} {
		if ValidBookingStatus(s) {
			t.Fatalf("%q geçersiz olmalı", s)
		}
	}
}

func TestBookingStatusWireValues(t *testing.T) {
	if string(BookingCheckedIn) != "checked-in" {
		t.Fatalf("checked-in tire ile yazılmalı, %q geldi", BookingCheckedIn)
	}
	if string(BookingNoShow) != "no-show" {
		t.Fatalf("no-show tire ile yazılmalı, %q geldi", BookingNoShow)
	}
}
