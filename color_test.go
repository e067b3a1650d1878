package csscolor

import (
	"encoding/json"
	"errors"
	"image/color"
	"math"
	"regexp"
	"testing"
)

var cssPattern = regexp.MustCompile(`^#[0-9a-f]{8}$`)

func TestColorCSS(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want string
	}{
		{"zero", New(0, 0, 0, 0), "#00000000"},
		{"one", New(1, 1, 1, 1), "#ffffffff"},
		{"half rounds up", New(0.5, 0.75, 0.25, 0.0625), "#80bf4010"},
		{"near lattice", New(0.502, 0.753, 0.25, 0.0625), "#80c04010"},
		{"out of range clamps", New(-1, -0.001, 1.0001, 2), "#0000ffff"},
		{"nan clamps to zero", New(math.NaN(), 0, 0, 1), "#000000ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.CSS(); got != tt.want {
				t.Errorf("CSS() = %q, want %q", got, tt.want)
			}
			if got := tt.c.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorCSSFormat(t *testing.T) {
	values := []float64{-3, -0.5, 0, 0.001, 0.1, 1.0 / 3, 0.5, 0.999, 1, 1.5, 100}
	for _, r := range values {
		for _, g := range values {
			for _, a := range values {
				c := New(r, g, 1-r, a)
				if got := c.CSS(); !cssPattern.MatchString(got) {
					t.Fatalf("New(%v, %v, %v, %v).CSS() = %q, want #rrggbbaa", r, g, 1-r, a, got)
				}
			}
		}
	}
}

func TestColorRoundTripOnByteLattice(t *testing.T) {
	for i := 0; i <= 255; i++ {
		v := float64(i) / 255
		c := New(v, float64(255-i)/255, v, float64(i/2)/255)
		got := Parse(c.CSS())
		if got != c {
			t.Fatalf("Parse(%q) = %+v, want %+v", c.CSS(), got, c)
		}
	}
}

func TestColorClone(t *testing.T) {
	orig := New(0.1, 0.2, 0.3, 0.4)
	clone := orig.Clone()
	clone.Darken(1)

	if orig != New(0.1, 0.2, 0.3, 0.4) {
		t.Errorf("modifying the clone changed the original: %+v", orig)
	}
	if clone == orig {
		t.Error("clone was not modified")
	}
}

func TestColorBytes(t *testing.T) {
	r, g, b, a := New(1, 0.5, 0, 2).Bytes()
	if r != 255 || g != 128 || b != 0 || a != 255 {
		t.Errorf("Bytes() = (%d, %d, %d, %d), want (255, 128, 0, 255)", r, g, b, a)
	}
}

func TestColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Color
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 0xffff},
		{"opaque white", White, 0xffff, 0xffff, 0xffff, 0xffff},
		{"transparent", Transparent, 0, 0, 0, 0},
		{"out of range red", New(2, -1, 0, 1), 0xffff, 0, 0, 0xffff},
		{"half alpha red", New(1, 0, 0, 0.5), 0x8080, 0, 0, 0x8080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%#x, %#x, %#x, %#x), want (%#x, %#x, %#x, %#x)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 0xc0, G: 0x80, B: 0x40, A: 0x20})
	if css := got.CSS(); css != "#c0804020" {
		t.Errorf("FromColor(NRGBA).CSS() = %q, want %q", css, "#c0804020")
	}

	// Premultiplied input is un-premultiplied.
	got = FromColor(color.RGBA{R: 0x40, G: 0, B: 0, A: 0x80})
	if css := got.CSS(); css != "#7f000080" {
		t.Errorf("FromColor(RGBA).CSS() = %q, want %q", css, "#7f000080")
	}
}

func TestColorTextMarshaling(t *testing.T) {
	type doc struct {
		Fg Color `json:"fg"`
		Bg Color `json:"bg"`
	}

	in := doc{Fg: Parse("#1234"), Bg: White}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if want := `{"fg":"#11223344","bg":"#ffffffff"}`; string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var out doc
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if out != in {
		t.Errorf("json round trip = %+v, want %+v", out, in)
	}

	err = json.Unmarshal([]byte(`{"fg":"tacos"}`), &out)
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("json.Unmarshal(tacos) error = %v, want ErrInvalidColor", err)
	}
}
