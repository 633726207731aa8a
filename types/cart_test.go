package types

import "testing"

func TestCartTotal(t *testing.T) {
	cases := []struct {
		name  string
		items []CartItem
		want  int64
	}{
		{"empty", nil, 0},
		{"single", []CartItem{{Title: "a", Price: 49}}, 49},
		{"quantity", []CartItem{{Title: "a", Price: 10, Quantity: 3}}, 30},
		// quantity 缺省按 1 计
		{"zero quantity", []CartItem{{Title: "a", Price: 10, Quantity: 0}}, 10},
		{"negative quantity", []CartItem{{Title: "a", Price: 10, Quantity: -2}}, 10},
		{"mixed", []CartItem{
			{Title: "a", Price: 49},
			{Title: "b", Price: 59, Quantity: 2},
			{Title: "c", Price: 0, Quantity: 5},
		}, 167},
	}

	for _, tc := range cases {
		if got := CartTotal(tc.items); got != tc.want {
			t.Errorf("%s: CartTotal = %d, want %d", tc.name, got, tc.want)
		}
	}
}
