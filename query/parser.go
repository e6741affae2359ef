// Package query parses query files: line-oriented lists of DICOM attributes to return, optionally with
// values to match. Each query line has the form
//
//	[CREATOR]GGGGEEEE:VR=VALUE
//
// where the creator, the VR and the value are optional. Lines starting with `#` are comments.
package query

import (
	"context"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/dcmtools/dcmquery/dicom"
	"github.com/dcmtools/dcmquery/internal/errors"
	"github.com/dcmtools/dcmquery/pkg/log"
)

const (
	// StdinPath makes ParseFile read from standard input.
	StdinPath = "-"

	// maxDiagnosticText is how much of a line a diagnostic quotes.
	maxDiagnosticText = 40

	vrLength = 2
)

// Parser turns query files into Specs. A Parser can be reused, every parse starts with fresh state.
type Parser struct {
	logger     log.Logger
	catalog    *dicom.Catalog
	dictionary dicom.Dictionary
	resolver   dicom.PrivateResolver
	extraName  string
	extraLines []string
}

// NewParser returns a parser using the built-in catalog unless configured otherwise.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{
		logger: log.Default(),
	}

	for _, opt := range opts {
		opt(parser)
	}

	if parser.catalog == nil {
		parser.catalog = dicom.DefaultCatalog()
	}

	return parser
}

// ParseFile is a shortcut for NewParser(opts...).ParseFile(ctx, path).
func ParseFile(ctx context.Context, path string, opts ...Option) (*Spec, error) {
	return NewParser(opts...).ParseFile(ctx, path)
}

// ParseFile parses the query file at path, or standard input if path is "-".
// A file that cannot be opened or read yields a FatalIOError and no spec.
func (parser *Parser) ParseFile(ctx context.Context, path string) (*Spec, error) {
	if path == StdinPath {
		return parser.Parse(ctx, "<stdin>", os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.New(FatalIOError{Path: path, Err: err})
	}

	defer file.Close() //nolint:errcheck

	return parser.Parse(ctx, path, file)
}

// Parse parses query lines read from r. name identifies the input in diagnostics.
func (parser *Parser) Parse(ctx context.Context, name string, r io.Reader) (*Spec, error) {
	session := parser.newSession()

	scanner := NewScanner(r)
	if err := session.parseLines(ctx, name, scanner.QueryLines()); err != nil {
		return nil, err
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.New(FatalIOError{Path: name, Err: err})
	}

	if len(parser.extraLines) > 0 {
		extra := NewScanner(strings.NewReader(strings.Join(parser.extraLines, "\n")))
		if err := session.parseLines(ctx, parser.extraName, extra.QueryLines()); err != nil {
			return nil, err
		}
	}

	return session.finish(), nil
}

// session holds the state of one parse.
type session struct {
	logger     log.Logger
	dictionary dicom.Dictionary
	resolver   dicom.PrivateResolver
	spec       *Spec
}

func (parser *Parser) newSession() *session {
	blocks := dicom.NewPrivateBlocks(parser.catalog)

	sess := &session{
		logger:     parser.logger,
		dictionary: blocks,
		resolver:   blocks,
		spec:       NewSpec(),
	}

	if parser.dictionary != nil {
		sess.dictionary = parser.dictionary
	}

	if parser.resolver != nil {
		sess.resolver = parser.resolver
	}

	return sess
}

func (sess *session) parseLines(ctx context.Context, name string, lines iter.Seq2[int, string]) error {
	for number, line := range lines {
		if err := ctx.Err(); err != nil {
			return errors.New(err)
		}

		sess.parseLine(location{file: name, line: number}, line)
	}

	return nil
}

func (sess *session) finish() *Spec {
	if reporter, ok := sess.resolver.(interface{ Creators() map[dicom.Tag]string }); ok {
		sess.spec.Creators = reporter.Creators()
	}

	sess.logger.Debugf("Parsed query with %d tags and %d attributes", len(sess.spec.Tags), sess.spec.Attributes.Len())

	return sess.spec
}

type location struct {
	file string
	line int
}

// parseLine handles one query line; line starts at its first non-whitespace byte.
func (sess *session) parseLine(loc location, line string) {
	cur := newCursor(line)

	creator, cur, ok := sess.parseCreator(loc, cur)
	if !ok {
		return
	}

	tagStart := cur
	tagText, cur := cur.takeWhile(isAlnum)
	tagEnd := cur

	tag, _ := dicom.ParseTag(tagText)

	// The tag is requested even if the rest of the line turns out to be unusable.
	sess.spec.AddTag(QueryTag{Tag: tag, Creator: creator})

	if creator != "" {
		tag = sess.resolver.ResolvePrivateTag(creator, tag)
	}

	explicit, cur := sess.parseVR(loc, tagStart, cur)

	vr, ok := sess.resolveVR(loc, tag, explicit, tagStart, cur)
	if !ok {
		sess.report(&Diagnostic{Kind: UnrecognizedTag, File: loc.file, Line: loc.line, Text: tagStart.between(tagEnd, maxDiagnosticText)})
		return
	}

	if !cur.at('=') {
		sess.spec.SetAttribute(tag, dicom.Wildcard(vr))
		return
	}

	value, _ := decodeValue(cur.advance(1))
	sess.spec.SetAttribute(tag, dicom.NewValue(vr, value))
}

// parseCreator reads an optional `[creator]`. It returns false if the closing bracket is missing.
func (sess *session) parseCreator(loc location, cur cursor) (string, cursor, bool) {
	if !cur.at('[') {
		return "", cur, true
	}

	creator, cur := cur.advance(1).takeWhile(not(isByte(']')))
	if cur.done() {
		sess.report(&Diagnostic{Kind: UnterminatedCreatorBlock, File: loc.file, Line: loc.line})
		return "", cur, false
	}

	return creator, cur.advance(1), true
}

// parseVR reads an optional `:VR`. Codes that are unknown or stand for a family of VRs are reported and
// dropped so the dictionary VR applies.
func (sess *session) parseVR(loc location, tagStart, cur cursor) (dicom.VR, cursor) {
	if !cur.at(':') {
		return "", cur
	}

	cur = cur.advance(1)
	if cur.remaining() < vrLength {
		return "", cur
	}

	code, cur := cur.take(vrLength)

	vr := dicom.VR(code)
	if !vr.IsConcrete() {
		sess.report(&Diagnostic{Kind: UnrecognizedVR, File: loc.file, Line: loc.line, Text: tagStart.between(cur, maxDiagnosticText)})
		return "", cur
	}

	return vr, cur
}

// resolveVR combines the explicit VR with the dictionary. It returns false if no usable VR exists.
func (sess *session) resolveVR(loc location, tag dicom.Tag, explicit dicom.VR, tagStart, vrEnd cursor) (dicom.VR, bool) {
	dictVR := sess.dictionary.LookupVR(tag)

	vr := explicit

	switch {
	case explicit == "":
		vr = dictVR
	case dictVR.IsValid() && !dictVR.IsUnknown() && !dictVR.Accepts(explicit):
		sess.report(&Diagnostic{
			Kind:   VRDictionaryMismatch,
			File:   loc.file,
			Line:   loc.line,
			Text:   tagStart.between(vrEnd, maxDiagnosticText),
			DictVR: dictVR,
		})
	}

	return vr, vr.IsValid() && !vr.IsUnknown()
}

func (sess *session) report(diag *Diagnostic) {
	sess.spec.Diagnose(diag)

	sess.logger.WithFields(log.Fields{
		log.FieldKeyFile: diag.File,
		log.FieldKeyLine: diag.Line,
	}).Log(diag.Level(), diag.Message())
}
