package parser

import (
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/clojure"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/lua"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/jward/onoma"
)

var (
	grammarsOnce sync.Once
	grammars     map[onoma.Language]*sitter.Language
)

func initGrammars() {
	grammars = map[onoma.Language]*sitter.Language{
		onoma.LanguageGo:            golang.GetLanguage(),
		onoma.LanguageRust:          rust.GetLanguage(),
		onoma.LanguageLua:           lua.GetLanguage(),
		onoma.LanguageTypeScript:    typescript.GetLanguage(),
		onoma.LanguageTypeScriptJSX: tsx.GetLanguage(),
		onoma.LanguageJavaScript:    javascript.GetLanguage(),
		onoma.LanguageJavaScriptJSX: javascript.GetLanguage(),
		onoma.LanguageClojure:       clojure.GetLanguage(),
	}
}

// GrammarFor returns the tree-sitter grammar handle for a Language.
func GrammarFor(lang onoma.Language) (*sitter.Language, bool) {
	grammarsOnce.Do(initGrammars)
	g, ok := grammars[lang]
	return g, ok
}
