// Package opentype implements styledtext.Font on top of TTF/OTF font
// files.
//
// The font parsing pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource; parses the file,
//     caches glyphs and kerning pairs, and owns one atlas page per
//     character size
//   - FontParser: pluggable parsing backend (default: golang.org/x/image)
//   - Kerner: pluggable pair-kerning backend (optional; the default reads
//     the font's legacy kern table, PairKerner shapes pairs through
//     go-text/typesetting for GPOS-kerned fonts)
//
// # Example usage
//
//	source, err := opentype.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	text := styledtext.NewText("Hello", source)
//
// # Pluggable parser backend
//
// Custom parsers can be registered for alternative implementations:
//
//	opentype.RegisterParser("myparser", myCustomParser)
//	source, err := opentype.NewFontSource(data, opentype.WithParser("myparser"))
package opentype
