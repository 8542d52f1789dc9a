package opentype

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	cacheLimit int
	parserName string
	atlasSize  int
	kerner     Kerner
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheLimit: 512,
		parserName: defaultParserName,
		atlasSize:  defaultAtlasSize,
	}
}

// WithCacheLimit sets the maximum number of cached glyphs per character
// size and the maximum number of cached kerning pairs.
// A value of 0 disables the cache limit.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithAtlasSize sets the initial atlas page dimension in pixels.
// Pages grow (doubling, up to an internal cap) when they fill up.
func WithAtlasSize(dim int) SourceOption {
	return func(c *sourceConfig) {
		if dim > 0 {
			c.atlasSize = dim
		}
	}
}

// WithKerner installs a pair-kerning backend, overriding the parser's
// kern-table lookup. Use NewPairKerner for fonts whose kerning lives in
// GPOS rather than the legacy kern table.
func WithKerner(k Kerner) SourceOption {
	return func(c *sourceConfig) {
		c.kerner = k
	}
}
