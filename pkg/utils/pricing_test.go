package utils

import "testing"

func TestDiscountAmount(t *testing.T) {
	cases := []struct {
		name    string
		price   int64
		percent int
		want    int64
	}{
		{"ten percent of 1000", 1000, 10, 100},
		{"ten percent of 5000", 5000, 10, 500},
		{"zero percent", 1000, 0, 0},
		{"negative percent", 1000, -5, 0},
		{"rounds half up", 999, 10, 100},
		{"rounds down", 994, 10, 99},
		{"capped at price", 1000, 150, 1000},
		{"zero price", 0, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DiscountAmount(tc.price, tc.percent)
			if got != tc.want {
				t.Errorf("DiscountAmount(%d, %d) = %d, want %d", tc.price, tc.percent, got, tc.want)
			}
		})
	}
}

func TestOrderTotal(t *testing.T) {
	if got := OrderTotal(1000, 100); got != 900 {
		t.Errorf("OrderTotal(1000, 100) = %d, want 900", got)
	}
	if got := OrderTotal(5000, 500); got != 4500 {
		t.Errorf("OrderTotal(5000, 500) = %d, want 4500", got)
	}
	if got := OrderTotal(1000, 0); got != 1000 {
		t.Errorf("OrderTotal(1000, 0) = %d, want 1000", got)
	}
	if got := OrderTotal(100, 200); got != 0 {
		t.Errorf("OrderTotal(100, 200) = %d, want 0 (floored)", got)
	}
}
