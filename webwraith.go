// Package webwraith resolves stylesheets against documents.
//
// Stylesheets use a small CSS subset: simple selectors (tag, #id, .class and
// the universal *), and declarations whose values are keywords, px lengths or
// #rrggbb colors. Every element of a document receives the declarations of
// the rules it matches, cascaded by specificity and then source order.
//
// # Styling
//
//	result, err := webwraith.Style(ctx, webwraith.Config{
//		Stylesheets: []string{"styles/**/*.css"},
//		Documents:   []string{"pages/*.html"},
//		Parser:      webwraith.ParserHTML,
//	}, logger)
//
// # Checking
//
// Check parses stylesheets without resolving anything and reports every
// syntax error as an Issue:
//
//	result, err := webwraith.Check(webwraith.Config{Stylesheets: []string{"**/*.css"}})
//
// # CLI Tool
//
//	go install github.com/babalolajnr/webwraith/cmd/webwraith@latest
package webwraith
