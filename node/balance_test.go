package node

import (
	"errors"
	"testing"
)

func TestOrderValidate(t *testing.T) {
	if err := DefaultOrder().Validate(); err != nil {
		t.Fatalf("expected default order to validate, got %v", err)
	}
	if err := (Order{MinItems: 1, MaxItems: 3}).Validate(); err != nil {
		t.Fatalf("expected smallest workable order to validate, got %v", err)
	}
	if err := (Order{MinItems: 0, MaxItems: 4}).Validate(); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder for MinItems=0, got %v", err)
	}
	if err := (Order{MinItems: 3, MaxItems: 5}).Validate(); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder for MaxItems < 2*MinItems, got %v", err)
	}
}

func TestOrderClassify(t *testing.T) {
	ord := Order{MinItems: 2, MaxItems: 4}
	cases := []struct {
		name     string
		count    int
		balanced bool
		over     bool
		under    bool
		empty    bool
	}{
		{"empty", 0, false, false, true, true},
		{"below min", 1, false, false, true, false},
		{"at min", 2, true, false, false, false},
		{"at max", 4, true, false, false, false},
		{"above max", 5, false, true, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := ord.Classify(tc.count)
			if b.Balanced() != tc.balanced || b.Overflowing() != tc.over ||
				b.Underflowing() != tc.under || b.Empty() != tc.empty {
				t.Fatalf("count %d classified as %s", tc.count, b)
			}
		})
	}
}

func TestBalanceString(t *testing.T) {
	ord := Order{MinItems: 1, MaxItems: 3}
	if got := ord.Classify(0).String(); got != "underflow(empty)" {
		t.Fatalf("unexpected rendering: %q", got)
	}
	if got := ord.Classify(2).String(); got != "balanced" {
		t.Fatalf("unexpected rendering: %q", got)
	}
	if got := ord.Classify(4).String(); got != "overflow" {
		t.Fatalf("unexpected rendering: %q", got)
	}
}
