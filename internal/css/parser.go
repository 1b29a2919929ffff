package css

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
	"go.uber.org/zap"

	"github.com/babalolajnr/webwraith/internal/scan"
)

// Parser parses stylesheet source into a Stylesheet.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a parser. A nil logger disables logging.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses a whole stylesheet. The optional name identifies the source
// in debug logs. The first grammar violation aborts the parse and is returned
// as a *ParseError; no partial stylesheet is ever returned.
func (p *Parser) Parse(source string, name ...string) (*Stylesheet, error) {
	label := "<input>"
	if len(name) > 0 && name[0] != "" {
		label = name[0]
	}

	st := newParserState(source)
	rules, err := st.parseRules()
	if err != nil {
		p.log.Debug("Stylesheet rejected", zap.String("source", label), zap.Error(err))
		return nil, err
	}

	p.log.Debug("Parsed stylesheet",
		zap.String("source", label),
		zap.Int("bytes", len(source)),
		zap.Int("rules", len(rules)))
	return &Stylesheet{Rules: rules}, nil
}

// Parse parses source with a parser that does not log.
func Parse(source string) (*Stylesheet, error) {
	return NewParser(nil).Parse(source)
}

// parserState is the per-call cursor over one source text.
type parserState struct {
	src string
	in  *parse.Input
}

func newParserState(source string) *parserState {
	return &parserState{src: source, in: parse.NewInputString(source)}
}

func (s *parserState) Pos() int       { return s.in.Pos() }
func (s *parserState) SetPos(pos int) { s.in.Rewind(pos) }
func (s *parserState) Input() string  { return s.src }

// errorAt builds a ParseError for offset, describing the rune found there.
func (s *parserState) errorAt(offset int, expected string) *ParseError {
	found := "EOF"
	if offset < len(s.src) {
		r, _ := utf8.DecodeRuneInString(s.src[offset:])
		found = fmt.Sprintf("%q", r)
	}
	return &ParseError{Offset: offset, Expected: expected, Found: found}
}

func (s *parserState) errorf(expected string) *ParseError {
	return s.errorAt(s.Pos(), expected)
}

// expect consumes ch or fails without moving.
func (s *parserState) expect(ch rune) error {
	if r, ok := scan.Peek(s); !ok || r != ch {
		return s.errorf(fmt.Sprintf("%q", ch))
	}
	scan.Next(s)
	return nil
}

func (s *parserState) parseRules() ([]Rule, error) {
	var rules []Rule
	for {
		scan.SkipWhitespace(s)
		if scan.EOF(s) {
			return rules, nil
		}
		rule, err := s.parseRule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
}

func (s *parserState) parseRule() (Rule, error) {
	selectors, err := s.parseSelectors()
	if err != nil {
		return Rule{}, err
	}
	declarations, err := s.parseDeclarations()
	if err != nil {
		return Rule{}, err
	}
	return Rule{Selectors: selectors, Declarations: declarations}, nil
}

// parseSelectors parses a comma-separated selector list up to, but not
// including, the opening brace.
func (s *parserState) parseSelectors() ([]Selector, error) {
	var selectors []Selector
	for {
		sel, err := s.parseSimpleSelector()
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, sel)

		scan.SkipWhitespace(s)
		r, ok := scan.Peek(s)
		switch {
		case ok && r == ',':
			scan.Next(s)
			scan.SkipWhitespace(s)
		case ok && r == '{':
			sort.SliceStable(selectors, func(i, j int) bool {
				return selectors[j].Specificity().Less(selectors[i].Specificity())
			})
			return selectors, nil
		default:
			return nil, s.errorf("',' or '{' in selector list")
		}
	}
}

func (s *parserState) parseSimpleSelector() (Simple, error) {
	var sel Simple
	start := s.Pos()

loop:
	for {
		r, ok := scan.Peek(s)
		if !ok {
			break
		}
		switch {
		case r == '#':
			scan.Next(s)
			id, err := s.requireIdentifier("id after '#'")
			if err != nil {
				return Simple{}, err
			}
			sel.ID = id
		case r == '.':
			scan.Next(s)
			class, err := s.requireIdentifier("class name after '.'")
			if err != nil {
				return Simple{}, err
			}
			sel.Classes = append(sel.Classes, class)
		case r == '*':
			scan.Next(s)
		case validIdentifierChar(r):
			sel.Tag = s.parseIdentifier()
		default:
			break loop
		}
	}

	if s.Pos() == start {
		return Simple{}, s.errorf("selector")
	}
	return sel, nil
}

func (s *parserState) parseDeclarations() ([]Declaration, error) {
	if err := s.expect('{'); err != nil {
		return nil, err
	}

	var declarations []Declaration
	for {
		scan.SkipWhitespace(s)
		r, ok := scan.Peek(s)
		if !ok {
			return nil, s.errorf("'}' to close declaration block")
		}
		if r == '}' {
			scan.Next(s)
			return declarations, nil
		}

		decl, err := s.parseDeclaration()
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, decl)
	}
}

func (s *parserState) parseDeclaration() (Declaration, error) {
	name, err := s.requireIdentifier("property name")
	if err != nil {
		return Declaration{}, err
	}

	scan.SkipWhitespace(s)
	if err := s.expect(':'); err != nil {
		return Declaration{}, err
	}
	scan.SkipWhitespace(s)

	value, err := s.parseValue()
	if err != nil {
		return Declaration{}, err
	}

	scan.SkipWhitespace(s)
	if err := s.expect(';'); err != nil {
		return Declaration{}, err
	}

	return Declaration{Name: name, Value: value}, nil
}

func (s *parserState) parseIdentifier() string {
	return scan.ConsumeWhile(s, validIdentifierChar)
}

func (s *parserState) requireIdentifier(expected string) (string, error) {
	ident := s.parseIdentifier()
	if ident == "" {
		return "", s.errorf(expected)
	}
	return ident, nil
}

func (s *parserState) parseValue() (Value, error) {
	r, ok := scan.Peek(s)
	switch {
	case ok && r >= '0' && r <= '9':
		return s.parseLength()
	case ok && r == '#':
		return s.parseColor()
	default:
		keyword, err := s.requireIdentifier("value")
		if err != nil {
			return nil, err
		}
		return Keyword(keyword), nil
	}
}

func (s *parserState) parseLength() (Value, error) {
	amount, err := s.parseFloat()
	if err != nil {
		return nil, err
	}
	unit, err := s.parseUnit()
	if err != nil {
		return nil, err
	}
	return Length{Amount: amount, Unit: unit}, nil
}

// parseFloat accepts digit+ ('.' digit+)?.
func (s *parserState) parseFloat() (float64, error) {
	start := s.Pos()
	text := scan.ConsumeWhile(s, func(r rune) bool {
		return (r >= '0' && r <= '9') || r == '.'
	})

	intPart, fracPart, hasDot := strings.Cut(text, ".")
	if intPart == "" || (hasDot && (fracPart == "" || strings.Contains(fracPart, "."))) {
		return 0, s.errorAt(start, "number")
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, s.errorAt(start, "number")
	}
	return f, nil
}

func (s *parserState) parseUnit() (Unit, error) {
	start := s.Pos()
	ident := s.parseIdentifier()
	switch strings.ToLower(ident) {
	case "px":
		return Px, nil
	}

	if ident == "" {
		return 0, s.errorAt(start, "unit 'px'")
	}
	return 0, &ParseError{Offset: start, Expected: "unit 'px'", Found: strconv.Quote(ident)}
}

func (s *parserState) parseColor() (Value, error) {
	if err := s.expect('#'); err != nil {
		return nil, err
	}

	var channels [3]uint8
	for i := range channels {
		v, err := s.parseHexPair()
		if err != nil {
			return nil, err
		}
		channels[i] = v
	}
	return Color{R: channels[0], G: channels[1], B: channels[2], A: 255}, nil
}

func (s *parserState) parseHexPair() (uint8, error) {
	pos := s.Pos()
	if pos+2 > len(s.src) {
		return 0, s.errorf("hex digit pair")
	}

	pair := s.src[pos : pos+2]
	v, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return 0, &ParseError{Offset: pos, Expected: "hex digit pair", Found: strconv.Quote(pair)}
	}
	s.SetPos(pos + 2)
	return uint8(v), nil
}

func validIdentifierChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	return false
}
