// Package markup parses the small tag language used for test documents and
// fixtures into a dom.Document.
//
// The grammar covers elements with quoted attributes, text and comments. It
// has no entities, void elements or implied end tags; use dom.ParseHTML for
// real HTML.
package markup

import (
	"fmt"
	"strings"

	"github.com/babalolajnr/webwraith/internal/dom"
	"github.com/babalolajnr/webwraith/internal/scan"
)

// SyntaxError reports the first malformed construct in a document.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// Parse parses source. A single top-level node becomes the root; several
// are wrapped in a synthetic html element.
func Parse(source string) (*dom.Document, error) {
	p := &parserState{input: source, b: dom.NewBuilder()}

	nodes, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	if !scan.EOF(p) {
		return nil, p.errorf("unexpected closing tag")
	}

	var root dom.NodeID
	if len(nodes) == 1 {
		root = nodes[0]
	} else {
		root = p.b.Element("html", nil, nodes...)
	}
	return p.b.Build(root), nil
}

type parserState struct {
	input string
	pos   int
	b     *dom.Builder
}

func (p *parserState) Pos() int       { return p.pos }
func (p *parserState) SetPos(pos int) { p.pos = pos }
func (p *parserState) Input() string  { return p.input }

func (p *parserState) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parserState) expect(s string) error {
	if !scan.StartsWith(p, s) {
		return p.errorf("expected %q", s)
	}
	p.pos += len(s)
	return nil
}

// parseNodes parses siblings until EOF or a closing tag.
func (p *parserState) parseNodes() ([]dom.NodeID, error) {
	var nodes []dom.NodeID
	for {
		scan.SkipWhitespace(p)
		if scan.EOF(p) || scan.StartsWith(p, "</") {
			return nodes, nil
		}
		id, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, id)
	}
}

func (p *parserState) parseNode() (dom.NodeID, error) {
	switch {
	case scan.StartsWith(p, "<!--"):
		return p.parseComment()
	case scan.StartsWith(p, "<"):
		return p.parseElement()
	default:
		return p.b.Text(scan.ConsumeWhile(p, func(r rune) bool { return r != '<' })), nil
	}
}

func (p *parserState) parseComment() (dom.NodeID, error) {
	start := p.pos
	p.pos += len("<!--")
	end := strings.Index(p.input[p.pos:], "-->")
	if end < 0 {
		return 0, &SyntaxError{Offset: start, Msg: "unterminated comment"}
	}
	data := p.input[p.pos : p.pos+end]
	p.pos += end + len("-->")
	return p.b.Comment(data), nil
}

func (p *parserState) parseElement() (dom.NodeID, error) {
	scan.Next(p) // '<'
	tag := strings.ToLower(p.parseName())
	if tag == "" {
		return 0, p.errorf("expected tag name")
	}

	attrs, err := p.parseAttributes()
	if err != nil {
		return 0, err
	}
	if err := p.expect(">"); err != nil {
		return 0, err
	}

	children, err := p.parseNodes()
	if err != nil {
		return 0, err
	}

	closeAt := p.pos
	if err := p.expect("</"); err != nil {
		return 0, p.errorf("expected closing tag for <%s>", tag)
	}
	closing := strings.ToLower(p.parseName())
	if err := p.expect(">"); err != nil {
		return 0, err
	}
	if closing != tag {
		return 0, &SyntaxError{
			Offset: closeAt,
			Msg:    fmt.Sprintf("closing tag </%s> does not match <%s>", closing, tag),
		}
	}

	return p.b.Element(tag, attrs, children...), nil
}

func (p *parserState) parseAttributes() (map[string]string, error) {
	attrs := map[string]string{}
	for {
		scan.SkipWhitespace(p)
		r, ok := scan.Peek(p)
		if !ok {
			return nil, p.errorf("unexpected end of input inside tag")
		}
		if r == '>' {
			return attrs, nil
		}

		name := p.parseName()
		if name == "" {
			return nil, p.errorf("expected attribute name, found %q", r)
		}
		scan.SkipWhitespace(p)
		if err := p.expect("="); err != nil {
			return nil, err
		}
		scan.SkipWhitespace(p)

		value, err := p.parseAttrValue()
		if err != nil {
			return nil, err
		}
		attrs[strings.ToLower(name)] = value
	}
}

func (p *parserState) parseAttrValue() (string, error) {
	start := p.pos
	quote, ok := scan.Next(p)
	if !ok || (quote != '"' && quote != '\'') {
		p.pos = start
		return "", p.errorf("expected quoted attribute value")
	}
	value := scan.ConsumeWhile(p, func(r rune) bool { return r != quote })
	if _, ok := scan.Next(p); !ok {
		return "", &SyntaxError{Offset: start, Msg: "unterminated attribute value"}
	}
	return value, nil
}

func (p *parserState) parseName() string {
	return scan.ConsumeWhile(p, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
	})
}
