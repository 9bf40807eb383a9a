package onoma

import (
	"fmt"
	"strings"
)

// Language is the closed set of structural grammars onoma can parse.
//
// Adding a language requires updating three things in lockstep: the
// extension mapping below, the grammar handle in internal/parser, and a
// structural symbol query for that grammar.
type Language string

const (
	LanguageGo           Language = "go"
	LanguageRust         Language = "rust"
	LanguageLua          Language = "lua"
	LanguageTypeScript   Language = "typescript"
	LanguageTypeScriptJSX Language = "typescript_jsx"
	LanguageJavaScript   Language = "javascript"
	LanguageJavaScriptJSX Language = "javascript_jsx"
	LanguageClojure      Language = "clojure"
)

var extensionToLanguage = map[string]Language{
	"go":   LanguageGo,
	"rs":   LanguageRust,
	"lua":  LanguageLua,
	"ts":   LanguageTypeScript,
	"tsx":  LanguageTypeScriptJSX,
	"js":   LanguageJavaScript,
	"jsx":  LanguageJavaScriptJSX,
	"clj":  LanguageClojure,
}

// LanguageForExtension derives a Language from a (possibly dotted, possibly
// mixed-case) file extension. It returns false for anything not in the
// supported set, mirroring the parser's InvalidUri failure mode.
func LanguageForExtension(ext string) (Language, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	lang, ok := extensionToLanguage[ext]
	return lang, ok
}

// SupportedExtensions returns every file extension (without a leading dot)
// recognized by LanguageForExtension, used by the indexer's directory walk
// to restrict discovery to relevant files.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(extensionToLanguage))
	for ext := range extensionToLanguage {
		exts = append(exts, ext)
	}
	return exts
}

// Range is a 1-based source range on both the line and column axes,
// matching editor conventions rather than tree-sitter's native 0-based
// rows/columns. As in tree-sitter, the end position is exclusive: it is
// one column past the last character.
//
// Invariant: (StartLine, StartColumn) must be lexicographically <=
// (EndLine, EndColumn).
type Range struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// RangeFromZeroBased converts tree-sitter's 0-based (row, column) pairs
// into a 1-based Range.
func RangeFromZeroBased(startRow, startCol, endRow, endCol int) Range {
	return Range{
		StartLine:   startRow + 1,
		StartColumn: startCol + 1,
		EndLine:     endRow + 1,
		EndColumn:   endCol + 1,
	}
}

// Role is the open set of roles an Occurrence can carry. Definition is the
// only role onoma currently acts on; Other preserves anything a structural
// query might emit without forcing the enum closed.
type Role struct {
	name string
}

// RoleDefinition marks an occurrence as the defining location of a symbol.
var RoleDefinition = Role{name: "definition"}

// OtherRole constructs a non-definition role by name.
func OtherRole(name string) Role { return Role{name: name} }

// IsDefinition reports whether the role is RoleDefinition.
func (r Role) IsDefinition() bool { return r.name == RoleDefinition.name }

// String returns the role's name.
func (r Role) String() string { return r.name }

// Occurrence is a single location a symbol name appears in source: the
// language it was parsed from, the absolute file path, its range, and the
// roles it carries at that location.
//
// Occurrences are produced by the parser and consumed by the indexer; only
// the definition-role occurrence of a symbol is ever persisted.
type Occurrence struct {
	Language Language
	Path     string
	Range    Range
	Roles    []Role
}

// HasRole reports whether any of the occurrence's roles matches role.
func (o Occurrence) HasRole(role Role) bool {
	for _, r := range o.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Symbol is the parser's in-memory unit of output: a kind, a name, an
// optional definition occurrence, and any further (non-definition)
// occurrences seen for the same name.
//
// Equality and hashing are deliberately kind-agnostic: two symbols with the
// same name and the same definition (or, absent a definition, the same
// occurrence list) are the same symbol regardless of what kind each was
// captured as. This lets a structural query emit overlapping captures (for
// example a Function and a Method capture over the same node) and have
// them collapse into a single entry — see DESIGN.md.
type Symbol struct {
	Kind        SymbolKind
	Name        string
	Definition  *Occurrence
	Occurrences []Occurrence
}

// NewSymbol constructs a Symbol with no occurrences yet attached.
func NewSymbol(kind SymbolKind, name string) Symbol {
	return Symbol{Kind: kind, Name: name}
}

// AddOccurrence attaches an occurrence to the symbol. The first occurrence
// bearing RoleDefinition becomes the symbol's Definition; everything else
// is appended to Occurrences.
func (s *Symbol) AddOccurrence(occ Occurrence) {
	if s.Definition == nil && occ.HasRole(RoleDefinition) {
		o := occ
		s.Definition = &o
		return
	}
	s.Occurrences = append(s.Occurrences, occ)
}

// IdentityKey returns the kind-agnostic identity used to deduplicate
// symbols emitted by the parser. Two symbols with equal IdentityKey are
// the same symbol regardless of Kind.
func (s Symbol) IdentityKey() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte(0)

	if s.Definition != nil {
		fmt.Fprintf(&b, "%s:%d:%d:%d:%d", s.Definition.Path,
			s.Definition.Range.StartLine, s.Definition.Range.StartColumn,
			s.Definition.Range.EndLine, s.Definition.Range.EndColumn)
		return b.String()
	}

	for _, occ := range s.Occurrences {
		fmt.Fprintf(&b, "%s:%d:%d:%d:%d;", occ.Path,
			occ.Range.StartLine, occ.Range.StartColumn,
			occ.Range.EndLine, occ.Range.EndColumn)
	}
	return b.String()
}

// Score is a signed ranking value for ResolvedSymbol candidates: the
// Resolver's DefaultScore plus signed adjustments, which are themselves
// Score values. Arithmetic on Score saturates rather than
// overflowing — see internal/scoring.
type Score int64

// ResolvedSymbol is the flattened join row the Resolver streams back to
// callers: a persisted symbol, its owning file's path, and the score it
// was assigned for a particular query.
type ResolvedSymbol struct {
	ID          int64
	Kind        SymbolKind
	Name        string
	Path        string
	Score       Score
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Less orders ResolvedSymbol deterministically by (path, name, start line),
// independent of score, so that repeated queries over an unchanged store
// produce stable output ordering for a given score tier.
func (r ResolvedSymbol) Less(other ResolvedSymbol) bool {
	if r.Path != other.Path {
		return r.Path < other.Path
	}
	if r.Name != other.Name {
		return r.Name < other.Name
	}
	return r.StartLine < other.StartLine
}

// Context carries the caller-supplied information that the Resolver's
// scoring function uses to favor results relevant to where the query was
// issued from.
type Context struct {
	// CurrentFile is the file the caller was focused on when the query
	// began, if any. It drives the distance penalty.
	CurrentFile string

	// SymbolKinds restricts results to the given kinds. Empty or nil means
	// "all kinds".
	SymbolKinds []SymbolKind
}

// WithCurrentFile returns a copy of ctx with CurrentFile set.
func (c Context) WithCurrentFile(path string) Context {
	c.CurrentFile = path
	return c
}

// WithSymbolKinds returns a copy of ctx with SymbolKinds set.
func (c Context) WithSymbolKinds(kinds ...SymbolKind) Context {
	c.SymbolKinds = append([]SymbolKind(nil), kinds...)
	return c
}
