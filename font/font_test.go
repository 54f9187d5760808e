package font

import (
	"errors"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name   string
		width  uint8
		height uint8
		rows   []uint16
		ok     bool
	}{
		{"valid", 7, 2, make([]uint16, 4), true},
		{"zero-width", 0, 2, make([]uint16, 4), false},
		{"too-wide", 17, 2, make([]uint16, 4), false},
		{"zero-height", 7, 0, make([]uint16, 4), false},
		{"no-rows", 7, 2, nil, false},
		{"ragged-rows", 7, 2, make([]uint16, 3), false},
	}
	for _, test := range testCases {
		t.Run(test.name, func(it *testing.T) {
			_, err := New(test.width, test.height, ' ', test.rows)
			if test.ok && err != nil {
				it.Errorf("expected no error, got %v", err)
			}
			if !test.ok && err == nil {
				it.Error("expected an error")
			}
		})
	}
}

func TestGlyph(t *testing.T) {
	f, err := New(8, 2, 'a', []uint16{0x1100, 0x2200, 0x3300, 0x4400})
	if err != nil {
		t.Fatal(err)
	}
	if v := f.Count(); v != 2 {
		t.Fatalf("expected 2 glyphs, got %d", v)
	}

	rows, err := f.Glyph('b')
	if err != nil {
		t.Fatalf("glyph 'b': %v", err)
	}
	if rows[0] != 0x3300 || rows[1] != 0x4400 {
		t.Errorf("expected rows 0x3300, 0x4400, got %#04x, %#04x", rows[0], rows[1])
	}

	for _, ch := range []rune{'`', 'c', 0} {
		if _, err = f.Glyph(ch); !errors.Is(err, ErrNoGlyph) {
			t.Errorf("glyph %q: expected ErrNoGlyph, got %v", ch, err)
		}
	}
}

func TestFixed7x13(t *testing.T) {
	f := Fixed7x13()
	if f.Width != 7 || f.Height != 13 {
		t.Fatalf("expected a 7x13 cell, got %dx%d", f.Width, f.Height)
	}
	if v := f.Count(); v != '~'-' '+1 {
		t.Fatalf("expected %d glyphs, got %d", '~'-' '+1, v)
	}

	t.Run("space-is-blank", func(it *testing.T) {
		rows, err := f.Glyph(' ')
		if err != nil {
			it.Fatal(err)
		}
		for i, row := range rows {
			if row != 0 {
				it.Errorf("expected blank row %d for space, got %#04x", i, row)
			}
		}
	})

	t.Run("letter-has-ink", func(it *testing.T) {
		rows, err := f.Glyph('A')
		if err != nil {
			it.Fatal(err)
		}
		var ink bool
		for _, row := range rows {
			if row != 0 {
				ink = true
			}
			// No ink bits beyond the cell width.
			if row&(0xffff>>uint(f.Width)) != 0 {
				it.Errorf("row %#04x has bits outside the %d pixel cell", row, f.Width)
			}
		}
		if !ink {
			it.Error("expected 'A' to have at least one lit pixel")
		}
	})

	t.Run("no-control-glyphs", func(it *testing.T) {
		if _, err := f.Glyph('\n'); !errors.Is(err, ErrNoGlyph) {
			it.Errorf("expected ErrNoGlyph, got %v", err)
		}
	})
}

func TestFromFace(t *testing.T) {
	f, err := FromFace(basicfont.Face7x13, '0', '9')
	if err != nil {
		t.Fatal(err)
	}
	if v := f.Count(); v != 10 {
		t.Fatalf("expected 10 glyphs, got %d", v)
	}
	if f.First() != '0' {
		t.Errorf("expected first glyph '0', got %q", f.First())
	}
	if _, err = f.Glyph('a'); !errors.Is(err, ErrNoGlyph) {
		t.Errorf("expected ErrNoGlyph for 'a', got %v", err)
	}

	if _, err = FromFace(basicfont.Face7x13, 'z', 'a'); err == nil {
		t.Error("expected an error for an empty range")
	}
}

func TestStringSize(t *testing.T) {
	f := Fixed7x13()
	testCases := []struct {
		s    string
		w, h int
	}{
		{"", 0, 0},
		{"x", 7, 13},
		{"hello", 35, 13},
	}
	for _, test := range testCases {
		if w, h := f.StringSize(test.s); w != test.w || h != test.h {
			t.Errorf("expected %q to measure %dx%d, got %dx%d", test.s, test.w, test.h, w, h)
		}
	}
}
