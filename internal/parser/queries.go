package parser

import "github.com/jward/onoma"

// symbolQueries holds, per language, the structural tree-sitter query used
// to extract definition symbols. Capture names are matched against
// onoma.SymbolKind's underlying strings by ParseSymbolKind; anything the
// grammar captures that isn't a recognized kind is silently dropped, never
// an error — this lets a query emit a richer taxonomy than the enum
// supports without breaking indexing.
var symbolQueries = map[onoma.Language]string{
	onoma.LanguageGo: `
(function_declaration name: (identifier) @function)
(method_declaration name: (field_identifier) @method)
(type_spec name: (type_identifier) @struct type: (struct_type))
(type_spec name: (type_identifier) @interface type: (interface_type))
(type_alias name: (type_identifier) @type_alias)
(type_spec name: (type_identifier) @type type: [
  (type_identifier)
  (pointer_type)
  (array_type)
  (slice_type)
  (map_type)
  (channel_type)
  (function_type)
  (qualified_type)
  (generic_type)
  (parenthesized_type)
])
(const_spec name: (identifier) @constant)
(var_spec name: (identifier) @variable)
(package_clause (package_identifier) @package)
`,

	onoma.LanguageRust: `
(function_item name: (identifier) @function)
(struct_item name: (type_identifier) @struct)
(enum_item name: (type_identifier) @enum)
(enum_variant name: (identifier) @enum_member)
(trait_item name: (type_identifier) @trait)
(function_signature_item name: (identifier) @trait_method)
(const_item name: (identifier) @constant)
(static_item name: (identifier) @variable)
(mod_item name: (identifier) @module)
(type_item name: (type_identifier) @type_alias)
(field_declaration name: (field_identifier) @field)
(macro_definition name: (identifier) @macro)
`,

	onoma.LanguageLua: `
(function_declaration name: (identifier) @function)
(function_declaration name: (dot_index_expression) @method)
(local_function name: (identifier) @function)
(assignment_statement (variable_list name: (identifier) @variable))
`,

	onoma.LanguageTypeScript: `
(function_declaration name: (identifier) @function)
(class_declaration name: (type_identifier) @class)
(interface_declaration name: (type_identifier) @interface)
(enum_declaration name: (identifier) @enum)
(enum_body (property_identifier) @enum_member)
(type_alias_declaration name: (type_identifier) @type_alias)
(method_definition name: (property_identifier) @method)
(variable_declarator name: (identifier) @variable)
`,

	onoma.LanguageTypeScriptJSX: `
(function_declaration name: (identifier) @function)
(class_declaration name: (type_identifier) @class)
(interface_declaration name: (type_identifier) @interface)
(enum_declaration name: (identifier) @enum)
(type_alias_declaration name: (type_identifier) @type_alias)
(method_definition name: (property_identifier) @method)
(variable_declarator name: (identifier) @variable)
`,

	onoma.LanguageJavaScript: `
(function_declaration name: (identifier) @function)
(class_declaration name: (identifier) @class)
(method_definition name: (property_identifier) @method)
(variable_declarator name: (identifier) @variable)
`,

	onoma.LanguageJavaScriptJSX: `
(function_declaration name: (identifier) @function)
(class_declaration name: (identifier) @class)
(method_definition name: (property_identifier) @method)
(variable_declarator name: (identifier) @variable)
`,

	// Clojure's grammar represents all forms uniformly as s-expressions, so
	// definitions are recognized positionally (the symbol following a
	// defn/def/defmacro head) rather than via a dedicated node type.
	onoma.LanguageClojure: `
(list_lit . (sym_lit) @_head (sym_lit) @function (#eq? @_head "defn"))
(list_lit . (sym_lit) @_head (sym_lit) @variable (#eq? @_head "def"))
(list_lit . (sym_lit) @_head (sym_lit) @macro (#eq? @_head "defmacro"))
`,
}

// QueryFor returns the structural symbol query for a language.
func QueryFor(lang onoma.Language) (string, bool) {
	q, ok := symbolQueries[lang]
	return q, ok
}
