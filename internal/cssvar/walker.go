package cssvar

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// lexToken is a lexer token with its byte offset in the document
type lexToken struct {
	tt     css.TokenType
	text   string
	offset int
}

func (t lexToken) isWhitespace() bool {
	return t.tt == css.WhitespaceToken
}

func (t lexToken) isDelim(s string) bool {
	return t.tt == css.DelimToken && t.text == s
}

// walkerState maintains context while walking a style sheet
type walkerState struct {
	filename   string
	content    string
	lineStarts []int // byte offset of each line start

	stmt       []lexToken // tokens of the statement being collected
	parenDepth int        // ( [ and function tokens
	interp     int        // nesting inside #{ ... } interpolation

	decls []Declaration
}

// ParseDeclarations walks CSS, SCSS or LESS source and returns every
// declaration in document order. Rule preludes and at-rule statements
// (@import, @include, @media ...) are skipped; LESS variable statements
// (@accent: red;) are returned as declarations.
func ParseDeclarations(content string, filename string) ([]Declaration, error) {
	state := &walkerState{
		filename:   filename,
		content:    content,
		lineStarts: computeLineStarts(content),
	}

	lexer := css.NewLexer(parse.NewInputString(blankLineComments(content)))
	offset := 0

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return state.decls, fmt.Errorf("lex %s: %w", filename, err)
			}
			break
		}

		tok := lexToken{tt: tt, text: string(data), offset: offset}
		offset += len(data)

		state.consume(tok)
	}

	// Unterminated last declaration (no ; and no closing brace)
	state.finishStatement()

	return state.decls, nil
}

// parseFile reads and walks a single style sheet
func parseFile(path string) ([]Declaration, error) {
	// #nosec G304 - path comes from the configured scan patterns
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return ParseDeclarations(string(content), path)
}

// consume routes one token
func (s *walkerState) consume(tok lexToken) {
	switch tok.tt {
	case css.CommentToken:
		// "red/**/blue" is two words
		if n := len(s.stmt); n > 0 && !s.stmt[n-1].isWhitespace() {
			s.stmt = append(s.stmt, lexToken{tt: css.WhitespaceToken, text: " ", offset: tok.offset})
		}
		return

	case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
		s.parenDepth++

	case css.RightParenthesisToken, css.RightBracketToken:
		if s.parenDepth > 0 {
			s.parenDepth--
		}

	case css.LeftBraceToken:
		if s.parenDepth > 0 {
			break
		}
		// #{$name} interpolation stays part of the statement
		if s.lastIsAdjacentHash(tok) {
			s.interp++
			break
		}
		// Rule or at-rule block: what we collected was a prelude
		s.resetStatement()
		return

	case css.RightBraceToken:
		if s.parenDepth > 0 {
			break
		}
		if s.interp > 0 {
			s.interp--
			break
		}
		// Block closes; the last declaration may lack a semicolon
		s.finishStatement()
		return

	case css.SemicolonToken:
		if s.parenDepth > 0 || s.interp > 0 {
			break
		}
		s.finishStatement()
		return
	}

	s.stmt = append(s.stmt, tok)
}

func (s *walkerState) lastIsAdjacentHash(tok lexToken) bool {
	if len(s.stmt) == 0 {
		return false
	}
	last := s.stmt[len(s.stmt)-1]
	return last.isDelim("#") && last.offset+len(last.text) == tok.offset
}

func (s *walkerState) resetStatement() {
	s.stmt = s.stmt[:0]
	s.parenDepth = 0
	s.interp = 0
}

// finishStatement turns the collected tokens into a declaration if they
// have the shape "property: value"
func (s *walkerState) finishStatement() {
	defer s.resetStatement()

	tokens := trimWhitespace(s.stmt)
	if len(tokens) == 0 {
		return
	}

	colon := -1
	depth := 0
	for i, tok := range tokens {
		switch tok.tt {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
		case css.ColonToken:
			if depth == 0 && colon < 0 {
				colon = i
			}
		}
		if colon >= 0 {
			break
		}
	}
	if colon <= 0 {
		return
	}

	propTokens := trimWhitespace(tokens[:colon])
	if len(propTokens) == 0 {
		return
	}

	// @media screen; @include foo; are at-rules, @accent: red; is a LESS variable
	if propTokens[0].tt == css.AtKeywordToken && len(propTokens) > 1 {
		return
	}

	for _, tok := range propTokens {
		if tok.isWhitespace() {
			return // "a b: c" is not a declaration
		}
	}

	valueTokens, important := stripImportant(trimWhitespace(tokens[colon+1:]))

	s.decls = append(s.decls, Declaration{
		Property:  joinTokens(propTokens),
		Value:     strings.TrimSpace(joinTokens(valueTokens)),
		Important: important,
		Pos:       s.position(propTokens[0].offset),
	})
}

// position converts a byte offset to a 1-based line/column
func (s *walkerState) position(offset int) Position {
	line := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}

	start := s.lineStarts[line]
	end := len(s.content)
	if line+1 < len(s.lineStarts) {
		end = s.lineStarts[line+1]
	}

	return Position{
		File:   s.filename,
		Line:   line + 1,
		Column: offset - start + 1,
		Text:   strings.TrimRight(s.content[start:end], "\r\n"),
	}
}

// stripImportant removes a trailing "! important" flag
func stripImportant(tokens []lexToken) ([]lexToken, bool) {
	n := len(tokens)
	if n == 0 || tokens[n-1].tt != css.IdentToken || !strings.EqualFold(tokens[n-1].text, "important") {
		return tokens, false
	}

	i := n - 2
	for i >= 0 && tokens[i].isWhitespace() {
		i--
	}
	if i < 0 || !tokens[i].isDelim("!") {
		return tokens, false
	}

	return trimWhitespace(tokens[:i]), true
}

func trimWhitespace(tokens []lexToken) []lexToken {
	start, end := 0, len(tokens)
	for start < end && tokens[start].isWhitespace() {
		start++
	}
	for end > start && tokens[end-1].isWhitespace() {
		end--
	}
	return tokens[start:end]
}

// joinTokens concatenates token text; runs of whitespace left behind by
// removed comments collapse into the first one
func joinTokens(tokens []lexToken) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && tok.isWhitespace() && tokens[i-1].isWhitespace() {
			continue
		}
		b.WriteString(tok.text)
	}
	return b.String()
}

// blankLineComments replaces SCSS/LESS "//" comments with spaces up to the
// end of the line. Strings, block comments and url() arguments are left
// alone. Byte offsets are preserved so positions still point into content.
func blankLineComments(content string) string {
	if !strings.Contains(content, "//") {
		return content
	}

	buf := []byte(content)
	for i := 0; i < len(buf); {
		switch c := buf[i]; {
		case c == '"' || c == '\'':
			i = skipString(buf, i)
		case c == '/' && i+1 < len(buf) && buf[i+1] == '*':
			end := strings.Index(content[i+2:], "*/")
			if end < 0 {
				return string(buf)
			}
			i += 2 + end + 2
		case c == '/' && i+1 < len(buf) && buf[i+1] == '/':
			for i < len(buf) && buf[i] != '\n' {
				buf[i] = ' '
				i++
			}
		case isURLStart(content, i):
			i = skipURL(buf, i+len("url("))
		default:
			i++
		}
	}
	return string(buf)
}

// skipString returns the offset after the quoted string starting at i.
// An unescaped newline ends an unterminated string.
func skipString(buf []byte, i int) int {
	quote := buf[i]
	for i++; i < len(buf); i++ {
		switch buf[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		case '\n':
			return i
		}
	}
	return i
}

// skipURL returns the offset after the url( argument starting at i
func skipURL(buf []byte, i int) int {
	for i < len(buf) {
		switch buf[i] {
		case '"', '\'':
			i = skipString(buf, i)
		case ')':
			return i + 1
		default:
			i++
		}
	}
	return i
}

// isURLStart reports whether a url( function name starts at i
func isURLStart(content string, i int) bool {
	if len(content)-i < len("url(") || !strings.EqualFold(content[i:i+len("url(")], "url(") {
		return false
	}
	if i == 0 {
		return true
	}
	prev := content[i-1]
	return !(prev == '-' || prev == '_' || prev >= 0x80 ||
		(prev >= 'a' && prev <= 'z') || (prev >= 'A' && prev <= 'Z') || (prev >= '0' && prev <= '9'))
}

func computeLineStarts(content string) []int {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
