package domain

import "testing"

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusReviewed, StatusAccepted, StatusCompleted, StatusCancelled} {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
	}
	for _, s := range []OrderStatus{"", "pending", "SHIPPED", "DONE"} {
		if s.Valid() {
			t.Fatalf("%q should not be valid", s)
		}
	}
}

func TestOrderStatusForwardOnly(t *testing.T) {
	// the happy path is strictly linear
	path := []OrderStatus{StatusPending, StatusReviewed, StatusAccepted, StatusCompleted}
	for i := 0; i < len(path)-1; i++ {
		if !path[i].CanTransitionTo(path[i+1]) {
			t.Fatalf("%s -> %s should be allowed", path[i], path[i+1])
		}
	}
	// no skipping, no going back
	if StatusPending.CanTransitionTo(StatusAccepted) {
		t.Fatal("PENDING -> ACCEPTED should be rejected")
	}
	if StatusAccepted.CanTransitionTo(StatusPending) {
		t.Fatal("ACCEPTED -> PENDING should be rejected")
	}
	if StatusAccepted.CanTransitionTo(StatusReviewed) {
		t.Fatal("ACCEPTED -> REVIEWED should be rejected")
	}
}

func TestOrderStatusCancellation(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusReviewed, StatusAccepted} {
		if !s.CanTransitionTo(StatusCancelled) {
			t.Fatalf("%s -> CANCELLED should be allowed", s)
		}
	}
	if StatusCompleted.CanTransitionTo(StatusCancelled) {
		t.Fatal("COMPLETED is terminal")
	}
	if StatusCancelled.CanTransitionTo(StatusPending) {
		t.Fatal("CANCELLED is terminal")
	}
	if !StatusCompleted.Terminal() || !StatusCancelled.Terminal() {
		t.Fatal("COMPLETED and CANCELLED should be terminal")
	}
}

func TestOrderShortCode(t *testing.T) {
	o := Order{ID: "8f14e45f-ceea-467f-9cff-abc123def456"}
	if got := o.ShortCode(); got != "def456" {
		t.Fatalf("want def456, got %s", got)
	}
	short := Order{ID: "abc"}
	if got := short.ShortCode(); got != "abc" {
		t.Fatalf("want abc, got %s", got)
	}
}

func TestEffectivePrice(t *testing.T) {
	p := Product{Price: 100, Discount: 25}
	if got := p.EffectivePrice(); got != 75 {
		t.Fatalf("want 75, got %v", got)
	}
	noDiscount := Product{Price: 19.5}
	if got := noDiscount.EffectivePrice(); got != 19.5 {
		t.Fatalf("discount 0 must leave price unchanged, got %v", got)
	}
}
