package platform

import "testing"

func TestPixelRatio(t *testing.T) {
	cases := []struct {
		fb, win int
		want    float64
	}{
		{800, 800, 1},
		{1600, 800, 2},
		{1200, 800, 1.5},
		{0, 800, 1},
		{800, 0, 1},
	}
	for _, c := range cases {
		if got := pixelRatio(c.fb, c.win); got != c.want {
			t.Errorf("pixelRatio(%d, %d) = %v, want %v", c.fb, c.win, got, c.want)
		}
	}
}
