package onoma

// SymbolKind is the semantic kind of a symbol defined by a programming
// language.
//
// It provides a language-agnostic classification of symbols that may appear
// in source code: types, functions, methods, fields, logical constructs, and
// language-specific abstractions. The set of kinds and their intended
// semantics are inspired by the SCIP (SCIP Indexing Protocol) Kind enum.
//
// The zero value is the empty string, which is not KindUnknown ("unknown").
// Unrecognized capture names from a structural
// query are never an error — they simply parse to Unknown, or more commonly
// never construct a symbol at all (see the parser package).
type SymbolKind string

// The full set of supported symbol kinds. Not exhaustive — future
// languages may introduce captures that map to new kinds without breaking
// existing callers, since Unknown absorbs anything unrecognized.
const (
	KindUnknown SymbolKind = "unknown"

	KindAbstractMethod SymbolKind = "abstract_method"
	KindAccessor       SymbolKind = "accessor"
	KindArray          SymbolKind = "array"
	KindAssertion      SymbolKind = "assertion"
	KindAssociatedType SymbolKind = "associated_type"
	KindAttribute      SymbolKind = "attribute"
	KindAxiom          SymbolKind = "axiom"
	KindBoolean        SymbolKind = "boolean"
	KindClass          SymbolKind = "class"
	KindConcept        SymbolKind = "concept"
	KindConstant       SymbolKind = "constant"
	KindConstructor    SymbolKind = "constructor"
	KindContract       SymbolKind = "contract"
	KindDataFamily     SymbolKind = "data_family"
	KindDelegate       SymbolKind = "delegate"
	KindEnum           SymbolKind = "enum"
	KindEnumMember     SymbolKind = "enum_member"
	KindError          SymbolKind = "error"
	KindEvent          SymbolKind = "event"
	KindExtension      SymbolKind = "extension"
	KindFact           SymbolKind = "fact"
	KindField          SymbolKind = "field"
	KindFile           SymbolKind = "file"
	KindFunction       SymbolKind = "function"
	KindGetter         SymbolKind = "getter"
	KindGrammar        SymbolKind = "grammar"
	KindInstance       SymbolKind = "instance"
	KindInterface      SymbolKind = "interface"
	KindKey            SymbolKind = "key"
	KindLang           SymbolKind = "lang"
	KindLemma          SymbolKind = "lemma"
	KindLibrary        SymbolKind = "library"
	KindMacro          SymbolKind = "macro"
	KindMethod         SymbolKind = "method"
	KindMethodAlias    SymbolKind = "method_alias"
	KindMethodReceiver SymbolKind = "method_receiver"
	KindMethodSpec     SymbolKind = "method_specification"
	KindMessage        SymbolKind = "message"
	KindMixin          SymbolKind = "mixin"
	KindModifier       SymbolKind = "modifier"
	KindModule         SymbolKind = "module"
	KindNamespace      SymbolKind = "namespace"
	KindNull           SymbolKind = "null"
	KindNumber         SymbolKind = "number"
	KindObject         SymbolKind = "object"
	KindOperator       SymbolKind = "operator"
	KindPackage        SymbolKind = "package"
	KindPackageObject  SymbolKind = "package_object"
	KindParameter      SymbolKind = "parameter"
	KindParameterLabel SymbolKind = "parameter_label"
	KindPattern        SymbolKind = "pattern"
	KindPredicate      SymbolKind = "predicate"
	KindProperty       SymbolKind = "property"
	KindProtocol       SymbolKind = "protocol"
	KindProtocolMethod SymbolKind = "protocol_method"
	KindPureVirtual    SymbolKind = "pure_virtual_method"
	KindQuasiquoter    SymbolKind = "quasiquoter"
	KindSelfParameter  SymbolKind = "self_parameter"
	KindSetter         SymbolKind = "setter"
	KindSignature      SymbolKind = "signature"
	KindSingletonClass SymbolKind = "singleton_class"
	KindSingletonMethod SymbolKind = "singleton_method"
	KindStaticDataMember SymbolKind = "static_data_member"
	KindStaticEvent    SymbolKind = "static_event"
	KindStaticField    SymbolKind = "static_field"
	KindStaticMethod   SymbolKind = "static_method"
	KindStaticProperty SymbolKind = "static_property"
	KindStaticVariable SymbolKind = "static_variable"
	KindString         SymbolKind = "string"
	KindStruct         SymbolKind = "struct"
	KindSubscript      SymbolKind = "subscript"
	KindTactic         SymbolKind = "tactic"
	KindTheorem        SymbolKind = "theorem"
	KindThisParameter  SymbolKind = "this_parameter"
	KindTrait          SymbolKind = "trait"
	KindTraitMethod    SymbolKind = "trait_method"
	KindType           SymbolKind = "type"
	KindTypeAlias      SymbolKind = "type_alias"
	KindTypeClass      SymbolKind = "type_class"
	KindTypeClassMethod SymbolKind = "type_class_method"
	KindTypeFamily     SymbolKind = "type_family"
	KindTypeParameter  SymbolKind = "type_parameter"
	KindUnion          SymbolKind = "union"
	KindValue          SymbolKind = "value"
	KindVariable       SymbolKind = "variable"
)

// allKinds lists every known kind, used by the resolver when a query does
// not restrict the candidate kind set.
var allKinds = []SymbolKind{
	KindUnknown, KindAbstractMethod, KindAccessor, KindArray, KindAssertion,
	KindAssociatedType, KindAttribute, KindAxiom, KindBoolean, KindClass,
	KindConcept, KindConstant, KindConstructor, KindContract, KindDataFamily,
	KindDelegate, KindEnum, KindEnumMember, KindError, KindEvent,
	KindExtension, KindFact, KindField, KindFile, KindFunction, KindGetter,
	KindGrammar, KindInstance, KindInterface, KindKey, KindLang, KindLemma,
	KindLibrary, KindMacro, KindMethod, KindMethodAlias, KindMethodReceiver,
	KindMethodSpec, KindMessage, KindMixin, KindModifier, KindModule,
	KindNamespace, KindNull, KindNumber, KindObject, KindOperator,
	KindPackage, KindPackageObject, KindParameter, KindParameterLabel,
	KindPattern, KindPredicate, KindProperty, KindProtocol,
	KindProtocolMethod, KindPureVirtual, KindQuasiquoter, KindSelfParameter,
	KindSetter, KindSignature, KindSingletonClass, KindSingletonMethod,
	KindStaticDataMember, KindStaticEvent, KindStaticField, KindStaticMethod,
	KindStaticProperty, KindStaticVariable, KindString, KindStruct,
	KindSubscript, KindTactic, KindTheorem, KindThisParameter, KindTrait,
	KindTraitMethod, KindType, KindTypeAlias, KindTypeClass,
	KindTypeClassMethod, KindTypeFamily, KindTypeParameter, KindUnion,
	KindValue, KindVariable,
}

// AllSymbolKinds returns every known symbol kind, in declaration order.
func AllSymbolKinds() []SymbolKind {
	out := make([]SymbolKind, len(allKinds))
	copy(out, allKinds)
	return out
}

var kindSet = func() map[SymbolKind]struct{} {
	m := make(map[SymbolKind]struct{}, len(allKinds))
	for _, k := range allKinds {
		m[k] = struct{}{}
	}
	return m
}()

// ParseSymbolKind maps a structural query's capture name to a SymbolKind.
// Unrecognized names return (Unknown, false) rather than an error — callers
// that only want recognized captures should check ok and skip otherwise,
// per the parser's "unrecognized captures are dropped, not errored" contract.
func ParseSymbolKind(capture string) (kind SymbolKind, ok bool) {
	k := SymbolKind(capture)
	if _, found := kindSet[k]; found {
		return k, true
	}
	return KindUnknown, false
}
