package pixel

import (
	"image/color"
	"testing"
)

func TestMono(t *testing.T) {
	for y := 0; y < 2; y++ {
		t.Run("", func(it *testing.T) {
			c := Off
			if y > 0 {
				c = On
			}
			r, g, b, _ := c.RGBA()
			y *= 0xF
			want := uint32(y | y<<4 | y<<8 | y<<12)
			if r != want {
				t.Errorf("expected red to be %#04x, got %#04x", want, r)
			}
			if g != want {
				t.Errorf("expected green to be %#04x, got %#04x", want, g)
			}
			if b != want {
				t.Errorf("expected blue to be %#04x, got %#04x", want, b)
			}
		})
	}
}

func TestMonoModel(t *testing.T) {
	testCases := []struct {
		color color.Color
		want  Mono
	}{
		{color.Black, Off},
		{color.White, On},
		{color.RGBA{R: 0xff, A: 0xff}, Off},
		{color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, On},
		{On, On},
		{Off, Off},
	}
	for _, test := range testCases {
		if v := MonoModel.Convert(test.color); v != test.want {
			t.Errorf("expected %v to convert to %#+v, got %#+v", test.color, test.want, v)
		}
	}
}
