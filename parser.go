package csscolor

import "github.com/gogpu/csscolor/internal/cache"

// DefaultCacheSize is the number of parse results a Parser keeps by default.
const DefaultCacheSize = 256

// ParserOption configures a Parser during creation.
//
// Example:
//
//	p := csscolor.NewParser(csscolor.WithCacheSize(1024), csscolor.WithStrict(true))
type ParserOption func(*parserOptions)

type parserOptions struct {
	cacheSize int
	strict    bool
}

func defaultParserOptions() parserOptions {
	return parserOptions{cacheSize: DefaultCacheSize}
}

// WithCacheSize sets how many distinct inputs the Parser remembers.
// A size of 0 or less disables the limit.
func WithCacheSize(n int) ParserOption {
	return func(o *parserOptions) {
		o.cacheSize = n
	}
}

// WithStrict makes Parser.Parse report unrecognized text as an error
// instead of returning Transparent with a nil error.
func WithStrict(strict bool) ParserOption {
	return func(o *parserOptions) {
		o.strict = strict
	}
}

// Parser parses color text and memoizes the results.
// It is safe for concurrent use.
type Parser struct {
	strict bool
	cache  *cache.Cache[string, parseResult]
}

type parseResult struct {
	color Color
	err   error
}

// NewParser creates a Parser with the given options.
func NewParser(opts ...ParserOption) *Parser {
	o := defaultParserOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := cache.New[string, parseResult](o.cacheSize)
	c.OnEvict(func(text string, _ parseResult) {
		Logger().Debug("csscolor: parse cache eviction", "text", text)
	})
	return &Parser{strict: o.strict, cache: c}
}

// Parse parses text using the same grammar as ParseStrict.
// In strict mode unrecognized text returns ErrInvalidColor; otherwise it
// returns Transparent and a nil error, like the package-level Parse.
// The returned Color is a copy and may be modified freely.
func (p *Parser) Parse(text string) (Color, error) {
	res := p.cache.GetOrCreate(text, func() parseResult {
		c, err := ParseStrict(text)
		return parseResult{color: c, err: err}
	})
	if res.err != nil {
		if p.strict {
			return Transparent, res.err
		}
		Logger().Debug("csscolor: falling back to transparent", "text", text)
		return Transparent, nil
	}
	return res.color, nil
}

// MustParse is like Parse but panics on error. It is intended for
// strict parsers initialized from constant text.
func (p *Parser) MustParse(text string) Color {
	c, err := p.Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

// ParserStats reports cache behavior of a Parser.
type ParserStats struct {
	Entries   int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Stats returns the current cache statistics.
func (p *Parser) Stats() ParserStats {
	s := p.cache.Stats()
	return ParserStats{
		Entries:   s.Len,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
	}
}

// Reset drops all cached results and statistics.
func (p *Parser) Reset() {
	p.cache.Clear()
}
