package seed

import "testing"

func TestPriceMultiplier(t *testing.T) {
	cases := []struct {
		base, quote int
		want        string
	}{
		{18, 6, "0.000000000001"},
		{6, 18, "1000000000000"},
		{18, 18, "1"},
		{8, 18, "10000000000"},
		{0, 0, "1"},
	}
	for _, tc := range cases {
		got := PriceMultiplier(tc.base, tc.quote)
		if got != tc.want {
			t.Fatalf("PriceMultiplier(%d, %d) = %s, want %s", tc.base, tc.quote, got, tc.want)
		}
		if again := PriceMultiplier(tc.base, tc.quote); again != got {
			t.Fatalf("PriceMultiplier not deterministic: %s != %s", again, got)
		}
	}
}
