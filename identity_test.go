package onoma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/onoma"
)

func TestStoreNameIsDeterministic(t *testing.T) {
	workspaces := []string{"/workspace/a", "/workspace/b"}

	require.Equal(t, onoma.StoreName(workspaces), onoma.StoreName(workspaces))
}

func TestStoreNameDependsOnOrder(t *testing.T) {
	forward := onoma.StoreName([]string{"/workspace/a", "/workspace/b"})
	reversed := onoma.StoreName([]string{"/workspace/b", "/workspace/a"})

	assert.NotEqual(t, forward, reversed)
}

func TestStoreNameDependsOnSubset(t *testing.T) {
	single := onoma.StoreName([]string{"/workspace/a"})
	pair := onoma.StoreName([]string{"/workspace/a", "/workspace/b"})

	assert.NotEqual(t, single, pair)
}

func TestIsEntrypointFile(t *testing.T) {
	cases := map[string]bool{
		"/some/file/mod.rs":    true,
		"/some/file/lib.rs":    true,
		"/some/file/main.go":   true,
		"/some/file/index.tsx": true,
		"/some/file/utils.go":  false,
	}

	for path, want := range cases {
		assert.Equalf(t, want, onoma.IsEntrypointFile(path), "path=%s", path)
	}
}

func TestIsPartOfTestHarness(t *testing.T) {
	cases := map[string]bool{
		"some_file.test.ts":       true,
		"some_file_test.go":       true,
		"tests/SomeFileTest.php":  true,
		"src/handler.go":          false,
	}

	for path, want := range cases {
		assert.Equalf(t, want, onoma.IsPartOfTestHarness(path), "path=%s", path)
	}
}

func TestPathDistance(t *testing.T) {
	assert.Equal(t, 0, onoma.PathDistance("/a/b/file.go", "/a/b/other.go"))
	assert.Equal(t, 0, onoma.PathDistance("/a/file.go", "/a/b/file.go"))
	assert.Equal(t, 6, onoma.PathDistance(
		"/a/totally/different/file/over/there/file.ts",
		"/some/file/over/here/file.rs",
	))
}

func TestNormalizeSymbolName(t *testing.T) {
	assert.Equal(t, "SomeEnum", onoma.NormalizeSymbolName("   SomeEnum   "))
	assert.Equal(t, "", onoma.NormalizeSymbolName("    \n\r\n\r    "))
}
