// Package ntriples implements the GraphStore port over the N-Triples
// line-oriented triple serialization.
package ntriples

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ersonp/cardlink/internal/domain/entities"
)

// Store reads and writes graph serializations on the local filesystem.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// ParseError describes a malformed line in a graph serialization.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// Load parses the N-Triples file at path into an in-memory graph.
// Statements keep their file order. A missing file is reported as a
// wrapped fs.ErrNotExist.
func (s *Store) Load(ctx context.Context, path string) (*entities.Graph, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("graph file not found: %s: %w", path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("opening graph file: %w", err)
	}
	defer f.Close()

	g := entities.NewGraph()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		st, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNum, Msg: err.Error()}
		}
		g.Add(st)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading graph file: %w", err)
	}

	return g, nil
}

// Save serializes the graph to path in insertion order, creating parent
// directories as needed and overwriting any existing file.
func (s *Store) Save(ctx context.Context, g *entities.Graph, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating graph file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, st := range g.Statements() {
		if err := writeStatement(w, st); err != nil {
			f.Close()
			return fmt.Errorf("writing graph file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing graph file: %w", err)
	}
	return f.Close()
}

func writeStatement(w *bufio.Writer, st entities.Statement) error {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(string(st.Subject))
	sb.WriteString("> <")
	sb.WriteString(string(st.Predicate))
	sb.WriteString("> ")

	switch obj := st.Object.(type) {
	case entities.IRI:
		sb.WriteString("<")
		sb.WriteString(string(obj))
		sb.WriteString(">")
	case entities.Literal:
		sb.WriteString(`"`)
		sb.WriteString(escapeLiteral(obj.Value))
		sb.WriteString(`"`)
		if obj.Lang != "" {
			sb.WriteString("@")
			sb.WriteString(obj.Lang)
		} else if obj.Datatype != "" {
			sb.WriteString("^^<")
			sb.WriteString(string(obj.Datatype))
			sb.WriteString(">")
		}
	default:
		return fmt.Errorf("unsupported object term %T", st.Object)
	}

	sb.WriteString(" .\n")
	_, err := w.WriteString(sb.String())
	return err
}

func escapeLiteral(v string) string {
	var sb strings.Builder
	for _, r := range v {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// lineParser consumes one statement line left to right.
type lineParser struct {
	line []rune
	pos  int
}

func parseLine(line string) (entities.Statement, error) {
	p := &lineParser{line: []rune(line)}

	subject, err := p.readIRI()
	if err != nil {
		return entities.Statement{}, fmt.Errorf("subject: %w", err)
	}
	p.skipSpaces()

	predicate, err := p.readIRI()
	if err != nil {
		return entities.Statement{}, fmt.Errorf("predicate: %w", err)
	}
	p.skipSpaces()

	object, err := p.readObject()
	if err != nil {
		return entities.Statement{}, fmt.Errorf("object: %w", err)
	}
	p.skipSpaces()

	if !p.consume('.') {
		return entities.Statement{}, errors.New("missing terminating '.'")
	}
	p.skipSpaces()
	if p.pos != len(p.line) {
		return entities.Statement{}, errors.New("trailing content after '.'")
	}

	return entities.Statement{Subject: subject, Predicate: predicate, Object: object}, nil
}

func (p *lineParser) skipSpaces() {
	for p.pos < len(p.line) && (p.line[p.pos] == ' ' || p.line[p.pos] == '\t') {
		p.pos++
	}
}

func (p *lineParser) consume(r rune) bool {
	if p.pos < len(p.line) && p.line[p.pos] == r {
		p.pos++
		return true
	}
	return false
}

func (p *lineParser) readIRI() (entities.IRI, error) {
	if !p.consume('<') {
		return "", errors.New("expected '<'")
	}
	start := p.pos
	for p.pos < len(p.line) {
		if p.line[p.pos] == '>' {
			iri := entities.IRI(string(p.line[start:p.pos]))
			p.pos++
			return iri, nil
		}
		p.pos++
	}
	return "", errors.New("unterminated IRI")
}

func (p *lineParser) readObject() (entities.Term, error) {
	if p.pos >= len(p.line) {
		return nil, errors.New("missing object term")
	}
	if p.line[p.pos] == '<' {
		return p.readIRI()
	}
	if p.line[p.pos] == '"' {
		return p.readLiteral()
	}
	return nil, fmt.Errorf("unexpected character %q", p.line[p.pos])
}

func (p *lineParser) readLiteral() (entities.Literal, error) {
	p.pos++ // opening quote
	var sb strings.Builder
	for {
		if p.pos >= len(p.line) {
			return entities.Literal{}, errors.New("unterminated literal")
		}
		r := p.line[p.pos]
		if r == '"' {
			p.pos++
			break
		}
		if r != '\\' {
			sb.WriteRune(r)
			p.pos++
			continue
		}
		unescaped, err := p.readEscape()
		if err != nil {
			return entities.Literal{}, err
		}
		sb.WriteRune(unescaped)
	}

	lit := entities.Literal{Value: sb.String()}

	if p.consume('@') {
		start := p.pos
		for p.pos < len(p.line) && p.line[p.pos] != ' ' && p.line[p.pos] != '\t' {
			p.pos++
		}
		if p.pos == start {
			return entities.Literal{}, errors.New("empty language tag")
		}
		lit.Lang = string(p.line[start:p.pos])
		return lit, nil
	}

	if p.pos+1 < len(p.line) && p.line[p.pos] == '^' && p.line[p.pos+1] == '^' {
		p.pos += 2
		dt, err := p.readIRI()
		if err != nil {
			return entities.Literal{}, fmt.Errorf("datatype: %w", err)
		}
		lit.Datatype = dt
	}

	return lit, nil
}

func (p *lineParser) readEscape() (rune, error) {
	p.pos++ // backslash
	if p.pos >= len(p.line) {
		return 0, errors.New("dangling escape")
	}
	r := p.line[p.pos]
	p.pos++
	switch r {
	case 't':
		return '\t', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	case 'u':
		return p.readHexEscape(4)
	case 'U':
		return p.readHexEscape(8)
	default:
		return 0, fmt.Errorf("unknown escape \\%c", r)
	}
}

func (p *lineParser) readHexEscape(digits int) (rune, error) {
	if p.pos+digits > len(p.line) {
		return 0, errors.New("truncated unicode escape")
	}
	var code rune
	for i := 0; i < digits; i++ {
		r := p.line[p.pos+i]
		var v rune
		switch {
		case r >= '0' && r <= '9':
			v = r - '0'
		case r >= 'a' && r <= 'f':
			v = r - 'a' + 10
		case r >= 'A' && r <= 'F':
			v = r - 'A' + 10
		default:
			return 0, fmt.Errorf("invalid unicode escape digit %q", r)
		}
		code = code<<4 | v
	}
	p.pos += digits
	return code, nil
}
