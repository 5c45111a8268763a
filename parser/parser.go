/*
Package parser provides the wisp reader.

	expr := ';' <comment-to-eol>
	      | "'" <expr>
	      | '(' <expr>* ')'
	      | '-'? [0-9]+ ('.' [0-9]+)?
	      | '"' <string-chars> '"'
	      | '@'
	      | <symbol-char>+

A symbol character is any byte that is alphabetic or punctuation and is
none of ( ) " '.  A '-' begins a number only when the following byte is a
digit.  Line comments are physically removed from the source buffer before
scanning continues, so they leave no tokens.
*/
package parser

import (
	"strconv"
	"strings"

	"github.com/adam-mcdaniel/wisp/lisp"
)

// Reader implements lisp.Reader.
type Reader struct{}

// NewReader returns a Reader for the root environment.
func NewReader() *Reader {
	return &Reader{}
}

// Read implements lisp.Reader.
func (r *Reader) Read(source string) ([]*lisp.Value, error) {
	return Parse(source)
}

// Parse parses every expression in source.
func Parse(source string) ([]*lisp.Value, error) {
	s := &scanner{src: []byte(source)}
	var vals []*lisp.Value
	for {
		v, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		if v == nil {
			return vals, nil
		}
		vals = append(vals, v)
	}
}

type scanner struct {
	src []byte
	pos int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	return s.src[s.pos]
}

func (s *scanner) peekAt(n int) byte {
	if s.pos+n >= len(s.src) {
		return 0
	}
	return s.src[s.pos+n]
}

func (s *scanner) skipSpace() {
	for !s.done() && isSpace(s.peek()) {
		s.pos++
	}
	for !s.done() && s.peek() == ';' {
		s.stripComment()
		for !s.done() && isSpace(s.peek()) {
			s.pos++
		}
	}
}

// stripComment removes the comment bytes from the source buffer through
// the end of the line.
func (s *scanner) stripComment() {
	end := s.pos
	for end < len(s.src) && s.src[end] != '\n' {
		end++
	}
	s.src = append(s.src[:s.pos], s.src[end:]...)
}

func (s *scanner) malformed() error {
	return &lisp.Error{Kind: lisp.MalformedProgram}
}

// parseExpr parses one expression, or returns nil at the end of input.
func (s *scanner) parseExpr() (*lisp.Value, error) {
	s.skipSpace()
	if s.done() {
		return nil, nil
	}
	switch {
	case s.peek() == '\'':
		s.pos++
		v, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, s.malformed()
		}
		return lisp.Quote(v), nil
	case s.peek() == '(':
		s.pos++
		cells := []*lisp.Value{}
		for {
			s.skipSpace()
			if s.done() {
				return nil, s.malformed()
			}
			if s.peek() == ')' {
				s.pos++
				return lisp.List(cells), nil
			}
			v, err := s.parseExpr()
			if err != nil {
				return nil, err
			}
			if v == nil {
				return nil, s.malformed()
			}
			cells = append(cells, v)
		}
	case isDigit(s.peek()) || (s.peek() == '-' && isDigit(s.peekAt(1))):
		return s.parseNumber()
	case s.peek() == '"':
		return s.parseString()
	case s.peek() == '@':
		s.pos++
		return lisp.Unit(), nil
	case isSymbol(s.peek()):
		start := s.pos
		for !s.done() && isSymbol(s.peek()) {
			s.pos++
		}
		return lisp.Atom(string(s.src[start:s.pos])), nil
	default:
		return nil, s.malformed()
	}
}

// parseNumber scans a numeric lexeme; a '.' in the lexeme selects float.
func (s *scanner) parseNumber() (*lisp.Value, error) {
	negate := false
	if s.peek() == '-' {
		negate = true
		s.pos++
	}
	start := s.pos
	for !s.done() && (isDigit(s.peek()) || s.peek() == '.') {
		s.pos++
	}
	text := string(s.src[start:s.pos])
	if strings.Contains(text, ".") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, s.malformed()
		}
		if negate {
			f = -f
		}
		return lisp.Float(f), nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, s.malformed()
	}
	if negate {
		n = -n
	}
	return lisp.Int(n), nil
}

func (s *scanner) parseString() (*lisp.Value, error) {
	s.pos++ // opening quote
	var buf strings.Builder
	for {
		if s.done() {
			return nil, s.malformed()
		}
		ch := s.peek()
		s.pos++
		switch ch {
		case '"':
			return lisp.String(buf.String()), nil
		case '\\':
			if s.done() {
				return nil, s.malformed()
			}
			esc := s.peek()
			s.pos++
			switch esc {
			case '\\':
				buf.WriteByte('\\')
			case '"':
				buf.WriteByte('"')
			case 'n':
				buf.WriteByte('\n')
			case 't':
				buf.WriteByte('\t')
			default:
				buf.WriteByte('\\')
				buf.WriteByte(esc)
			}
		default:
			buf.WriteByte(ch)
		}
	}
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isAlpha(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

// isPunct matches the printable non-alphanumeric bytes.
func isPunct(ch byte) bool {
	return '!' <= ch && ch <= '~' && !isAlpha(ch) && !isDigit(ch)
}

func isSymbol(ch byte) bool {
	return (isAlpha(ch) || isPunct(ch)) && ch != '(' && ch != ')' && ch != '"' && ch != '\''
}
