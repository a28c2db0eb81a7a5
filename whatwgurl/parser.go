package whatwgurl

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alwinb/whatwg-url/percent"
)

const eof rune = -1

// parser is a single pass scanner over the code points of a URL string. The
// separator rules depend on mode and on the scheme once one has been read.
type parser struct {
	input   []rune
	pointer int
	mode    ParserMode
	scheme  string
	special bool

	rec        *Record
	authString Opt
}

// newParser returns a parser over input, which must already be prepared.
func newParser(input string, mode ParserMode) *parser {
	p := &parser{
		input: []rune(input),
		mode:  mode,
		rec:   &Record{},
	}
	p.configure()
	return p
}

// prepareInput removes ASCII tab and newline and trims leading and trailing
// C0 controls and spaces.
func prepareInput(s string) string {
	s = trimTabAndNewline(s)
	return strings.TrimFunc(s, percent.IsC0ControlOrSpace)
}

func trimTabAndNewline(s string) string {
	if !strings.ContainsAny(s, "\t\n\r") {
		return s
	}
	return strings.Map(func(r rune) rune {
		if percent.IsTabOrNewline(r) {
			return -1
		}
		return r
	}, s)
}

// Parse tokenizes input into a raw Record without resolving, normalizing or
// validating it. The mode applies until a scheme is found in the input.
// The only failures are ErrMalformed and ErrInvalidHost.
func Parse(input string, mode ParserMode) (*Record, error) {
	if !utf8.ValidString(input) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrMalformed)
	}
	return newParser(prepareInput(input), mode).parse()
}

func (p *parser) configure() {
	p.special = IsSpecialScheme(p.scheme) || p.mode != ModeNonSpecial
}

func (p *parser) at(i int) rune {
	if i < len(p.input) {
		return p.input[i]
	}
	return eof
}

func (p *parser) c() rune { return p.at(p.pointer) }

func (p *parser) isSlash(c rune) bool {
	return c == '/' || (p.special && c == '\\')
}

func (p *parser) isNonSep(c rune) bool {
	return c != eof && c != '?' && c != '#' && !p.isSlash(c)
}

func (p *parser) token(from, to int) string {
	return string(p.input[from:to])
}

func (p *parser) parse() (*Record, error) {
	p.parseScheme()
	if p.rec.Scheme.IsSet() {
		p.mode = ParserModeFor(p.rec)
		p.configure()
	}

	if p.isSlash(p.c()) && p.isSlash(p.at(p.pointer+1)) {
		p.pointer += 2
		start := p.pointer
		for p.isNonSep(p.c()) {
			p.pointer++
		}
		p.authString = Some(p.token(start, p.pointer))
	}

	p.parsePath(false)

	if p.c() == '?' {
		p.parseQuery()
	}
	if p.c() == '#' {
		p.rec.Fragment = Some(p.token(p.pointer+1, len(p.input)))
		p.pointer = len(p.input)
	}

	if p.scheme == "file" || (!p.rec.Scheme.IsSet() && p.mode == ModeFile) {
		p.detectDrive()
	}

	if auth, ok := p.authString.Get(); ok {
		if err := p.rec.setAuthFromString(auth, p.mode == ModeNonSpecial); err != nil {
			return nil, err
		}
	}
	return p.rec, nil
}

// parseScheme reads a scheme terminated by ":". Without the terminator the
// pointer is rewound to the start.
func (p *parser) parseScheme() {
	if !percent.IsASCIIAlpha(p.c()) {
		return
	}
	for p.pointer++; isSchemeCodePoint(p.c()); p.pointer++ {
	}
	if p.c() != ':' {
		p.pointer = 0
		return
	}
	p.rec.Scheme = Some(p.token(0, p.pointer))
	p.scheme = strings.ToLower(p.rec.Scheme.String())
	p.pointer++
}

func isSchemeCodePoint(c rune) bool {
	return percent.IsASCIIAlphanumeric(c) || c == '+' || c == '-' || c == '.'
}

// parsePath reads the path root, directories and file. A standalone path
// also consumes ? and # as ordinary code points.
func (p *parser) parsePath(standalone bool) {
	if p.isSlash(p.c()) {
		p.rec.PathRoot = true
		p.pointer++
	}
	start := p.pointer
	for c := p.c(); c != eof && (standalone || (c != '?' && c != '#')); c = p.c() {
		if p.isSlash(c) {
			p.rec.Dirs = append(p.rec.Dirs, p.token(start, p.pointer))
			start = p.pointer + 1
		}
		p.pointer++
	}
	if start != p.pointer {
		p.rec.File = Some(p.token(start, p.pointer))
	}
}

func (p *parser) parseQuery() {
	p.pointer++
	start := p.pointer
	for c := p.c(); c != eof && c != '#'; c = p.c() {
		p.pointer++
	}
	p.rec.Query = Some(p.token(start, p.pointer))
}

// detectDrive promotes a Windows drive letter found in the authority, the
// first directory or a lone file token.
func (p *parser) detectDrive() {
	r := p.rec
	switch {
	case isDriveLetter(p.authString):
		r.Drive = p.authString
		p.authString = Some("")
	case len(r.Dirs) > 0 && isDriveLetter(Some(r.Dirs[0])):
		r.Drive = Some(r.Dirs[0])
		r.PathRoot = true
		r.Dirs = r.Dirs[1:]
	case len(r.Dirs) == 0 && isDriveLetter(r.File):
		r.Drive = r.File
		r.PathRoot = false
		r.File = Opt{}
	}
}

// isDriveLetter matches an ASCII letter followed by ":" or "|".
func isDriveLetter(o Opt) bool {
	s, ok := o.Get()
	return ok && len(s) == 2 && percent.IsASCIIAlpha(rune(s[0])) && (s[1] == ':' || s[1] == '|')
}
