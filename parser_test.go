package csscolor

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

func TestParserLenient(t *testing.T) {
	p := NewParser()

	c, err := p.Parse("#1234")
	if err != nil {
		t.Fatalf("Parse(#1234) error = %v", err)
	}
	if got := c.CSS(); got != "#11223344" {
		t.Errorf("Parse(#1234) = %q, want %q", got, "#11223344")
	}

	c, err = p.Parse("tacos")
	if err != nil {
		t.Errorf("lenient Parse(tacos) error = %v, want nil", err)
	}
	if c != Transparent {
		t.Errorf("lenient Parse(tacos) = %v, want transparent", c)
	}
}

func TestParserStrict(t *testing.T) {
	p := NewParser(WithStrict(true))

	if _, err := p.Parse("tacos"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("strict Parse(tacos) error = %v, want ErrInvalidColor", err)
	}
	// Cached failures must still be reported.
	if _, err := p.Parse("tacos"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("second strict Parse(tacos) error = %v, want ErrInvalidColor", err)
	}
	if _, err := p.Parse("transparent"); err != nil {
		t.Errorf("strict Parse(transparent) error = %v, want nil", err)
	}
}

func TestParserMustParse(t *testing.T) {
	p := NewParser(WithStrict(true))
	if got := p.MustParse("rgb(255,0,0)").CSS(); got != "#ff0000ff" {
		t.Errorf("MustParse() = %q, want %q", got, "#ff0000ff")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParse(tacos) did not panic")
		}
	}()
	p.MustParse("tacos")
}

func TestParserCachesResults(t *testing.T) {
	p := NewParser()
	for _i := 0; _i < 5; _i++ {
		_, _ = p.Parse("hsl(210, 60%, 40%)")
	}

	s := p.Stats()
	if s.Entries != 1 || s.Misses != 1 || s.Hits != 4 {
		t.Errorf("Stats() = %+v, want 1 entry, 1 miss, 4 hits", s)
	}

	p.Reset()
	if s := p.Stats(); s.Entries != 0 || s.Hits != 0 {
		t.Errorf("Stats() after Reset = %+v, want empty", s)
	}
}

func TestParserCacheSize(t *testing.T) {
	p := NewParser(WithCacheSize(4))
	for i := 0; i < 10; i++ {
		_, _ = p.Parse("rgb(" + strconv.Itoa(i) + ",0,0)")
	}

	s := p.Stats()
	if s.Entries != 4 {
		t.Errorf("Stats().Entries = %d, want 4", s.Entries)
	}
	if s.Evictions != 6 {
		t.Errorf("Stats().Evictions = %d, want 6", s.Evictions)
	}
}

func TestParserResultIsCopy(t *testing.T) {
	p := NewParser()
	c, _ := p.Parse("white")
	c.Darken(1)

	again, _ := p.Parse("white")
	if got := again.CSS(); got != "#ffffffff" {
		t.Errorf("cached white after mutating a result = %q, want %q", got, "#ffffffff")
	}
}

func TestParserConcurrent(t *testing.T) {
	p := NewParser(WithCacheSize(8))
	inputs := []string{"white", "#c0804020", "#edb", "hsl(210, 60%, 40%)", "tacos", "rgb(1,2,3)"}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				in := inputs[(g+i)%len(inputs)]
				got, err := p.Parse(in)
				if err != nil {
					t.Errorf("Parse(%q) error = %v", in, err)
					return
				}
				if want := Parse(in); got != want {
					t.Errorf("Parse(%q) = %v, want %v", in, got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkParserCached(b *testing.B) {
	p := NewParser()
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		_, _ = p.Parse("hsl(210, 60%, 40%)")
	}
}
