package onoma

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"
)

// StoreName computes the deterministic store identity for an ordered
// sequence of workspace roots: a SHA-256 digest over the UTF-8 bytes of
// each root's string form, concatenated in iteration order with no
// separator, hex-encoded.
//
// Independent components (Indexer, Resolver) that are given the same
// ordered workspace sequence and storage directory converge on the same
// store file. A different subset, or the same roots in a different order,
// produces a different store — that is load-bearing, not an accident.
func StoreName(workspaces []string) string {
	h := sha256.New()
	for _, w := range workspaces {
		h.Write([]byte(w))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// StorePath returns the full database file path for a storage directory
// and an ordered workspace sequence.
func StorePath(storageDir string, workspaces []string) string {
	return filepath.Join(storageDir, StoreName(workspaces)+".db")
}

// entrypointBasenames is the fixed set of conventional re-export / main
// module file names. Symbols defined in these files are penalized by the
// scorer in favor of the file that actually defines them.
var entrypointBasenames = map[string]struct{}{
	"mod.rs":      {},
	"lib.rs":      {},
	"main.rs":     {},
	"index.js":    {},
	"index.jsx":   {},
	"index.ts":    {},
	"index.tsx":   {},
	"index.mjs":   {},
	"index.cjs":   {},
	"index.vue":   {},
	"__init__.py": {},
	"__main__.py": {},
	"main.go":     {},
	"main.c":      {},
	"index.php":   {},
	"main.rb":     {},
	"index.rb":    {},
}

// IsEntrypointFile reports whether path's basename is a conventional
// re-export or main-module file.
func IsEntrypointFile(path string) bool {
	_, ok := entrypointBasenames[filepath.Base(path)]
	return ok
}

// testHarnessSuffixes is the closed list of basename suffixes that mark a
// file as part of a test harness.
var testHarnessSuffixes = []string{
	".test.js", ".test.jsx", ".test.ts", ".test.tsx", ".spec.js", ".spec.jsx",
	".spec.ts", ".spec.tsx",
	"_test.go",
	"_test.rs", "test_.rs", "tests.rs",
	"_test.py",
	"_test.rb", "test_.rb",
	"_test.c", "_test.cc", "_test.cpp",
	"Test.java", "Test.kt", "Test.cs", "Tests.cs", "Tests.swift",
}

// IsPartOfTestHarness reports whether path is a test file, either because
// its basename carries a recognized test suffix, or because some ancestor
// directory is literally named "tests".
func IsPartOfTestHarness(path string) bool {
	base := filepath.Base(path)

	switch base {
	case "test.php", "test_.py":
		return true
	}

	for _, suffix := range testHarnessSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}

	if strings.Contains(strings.ToLower(base), "test") &&
		(strings.HasSuffix(base, ".php") || strings.HasSuffix(base, ".rb")) {
		return true
	}

	for dir := filepath.Dir(path); ; {
		parent := filepath.Dir(dir)
		if filepath.Base(dir) == "tests" {
			return true
		}
		if parent == dir {
			break
		}
		dir = parent
	}

	return false
}

// PathDistance is the structural distance between the parent directories
// of two file paths: split each parent by the platform separator, drop
// empty components, and return the number of components in a's parent
// that are not shared as a common prefix with b's parent. It is not
// symmetric — callers pass the current/reference file as a and the
// candidate symbol's file as b, matching the resolver's scoring use.
//
// Special case: if both paths have the same parent directory, the
// distance is 0 even though the common-prefix computation alone would
// agree — this is called out explicitly because it is the most common
// case in practice (sibling files).
func PathDistance(a, b string) int {
	dirA := filepath.Dir(a)
	dirB := filepath.Dir(b)

	if dirA == dirB {
		return 0
	}

	partsA := splitPathComponents(dirA)
	partsB := splitPathComponents(dirB)

	common := 0
	for common < len(partsA) && common < len(partsB) && partsA[common] == partsB[common] {
		common++
	}

	return len(partsA) - common
}

func splitPathComponents(path string) []string {
	raw := strings.Split(filepath.ToSlash(path), "/")
	out := raw[:0]
	for _, p := range raw {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NormalizeSymbolName trims ASCII whitespace and converts CRLF line
// endings to LF, so that parsed names are stable across platforms. A
// symbol whose name normalizes to the empty string is dropped by the
// parser rather than indexed.
func NormalizeSymbolName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "\r\n", "\n")
	return name
}
