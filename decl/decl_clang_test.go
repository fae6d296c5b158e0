//go:build clang

package decl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daedaleanai/cbindgen/clang"
	"github.com/daedaleanai/cbindgen/decl"
	"github.com/daedaleanai/cbindgen/headerset"
	"github.com/daedaleanai/cbindgen/output"
)

// walkHeader parses a small header written to a temp file and returns
// every item Walk produced for it, keyed by name.
func walkHeader(t *testing.T, source string, opts decl.Options) map[string]output.Item {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "header.h")
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))

	index := clang.NewIndex(true, false)
	defer index.Dispose()

	tu, err := index.Parse(path, nil, nil, clang.FlagDetailedPreprocessingRecord|clang.FlagSkipFunctionBodies)
	require.NoError(t, err)
	defer tu.Dispose()

	opts.Headers = map[string]bool{clang.NormalizePath(path): true}

	agg := output.NewAggregator()
	decl.Walk(tu, opts, agg)
	require.Nil(t, agg.Errors())

	items := map[string]output.Item{}
	for _, byHeader := range agg.ByHeader() {
		for _, item := range byHeader {
			items[item.Name] = item
		}
	}
	return items
}

func TestWalkRecord(t *testing.T) {
	items := walkHeader(t, `
struct Point {
    int x;
    int y;
};
`, decl.Options{Features: headerset.NewSet("default")})

	item, ok := items["Point"]
	require.True(t, ok)
	assert.Contains(t, item.DeclarationText, "pub struct Point")
	assert.Contains(t, item.DeclarationText, "pub x: int,")
	assert.Contains(t, item.DeclarationText, "pub y: int,")
}

func TestWalkAnonymousNestedRecord(t *testing.T) {
	items := walkHeader(t, `
typedef struct {
    int dwOSVersionInfoSize;
    union {
        int a;
        int b;
    } SYSTEM_INFO_Child_0;
} SYSTEM_INFO;
`, decl.Options{Features: headerset.NewSet("default")})

	_, ok := items["SYSTEM_INFO_Child_0"]
	assert.True(t, ok, "anonymous nested union should emit under its synthesized name")
}

func TestWalkEnum(t *testing.T) {
	items := walkHeader(t, `
enum Color { RED, GREEN, BLUE = 5 };
`, decl.Options{Features: headerset.NewSet("default")})

	_, ok := items["Color"]
	require.True(t, ok)
	blue, ok := items["BLUE"]
	require.True(t, ok)
	assert.Contains(t, blue.DeclarationText, "= 5;")
}

func TestWalkTypedef(t *testing.T) {
	items := walkHeader(t, `
typedef unsigned int UINT32;
`, decl.Options{Features: headerset.NewSet("default")})

	item, ok := items["UINT32"]
	require.True(t, ok)
	assert.Contains(t, item.DeclarationText, "pub type UINT32")
}

func TestWalkFunction(t *testing.T) {
	items := walkHeader(t, `
int Add(int a, int b);
`, decl.Options{Features: headerset.NewSet("default")})

	item, ok := items["Add"]
	require.True(t, ok)
	assert.Contains(t, item.DeclarationText, `extern "C"`)
	assert.Contains(t, item.DeclarationText, "pub fn Add(a:")
}

func TestWalkVarDecl(t *testing.T) {
	items := walkHeader(t, `
extern const int kMaxWidgets;
`, decl.Options{Features: headerset.NewSet("default")})

	item, ok := items["kMaxWidgets"]
	require.True(t, ok)
	assert.Contains(t, item.DeclarationText, "pub static kMaxWidgets:")
	assert.NotContains(t, item.DeclarationText, "mut kMaxWidgets")
}

func TestWalkMacroConstant(t *testing.T) {
	items := walkHeader(t, `
#define MAX_WIDGETS 100
`, decl.Options{Features: headerset.NewSet("default")})

	item, ok := items["MAX_WIDGETS"]
	require.True(t, ok)
	assert.Contains(t, item.DeclarationText, "pub const MAX_WIDGETS")
	assert.Contains(t, item.DeclarationText, "100")
}

func TestWalkMacroUnsupportedStub(t *testing.T) {
	items := walkHeader(t, `
#define CALL_HELPER(x) helper(x)
`, decl.Options{Features: headerset.NewSet("default"), StubUnsupportedMacros: true})

	item, ok := items["CALL_HELPER"]
	require.True(t, ok)
	assert.Contains(t, item.DeclarationText, "unsupported macro")
}

func TestWalkSystemHeaderFiltered(t *testing.T) {
	items := walkHeader(t, `
#include <stddef.h>
struct Local { int value; };
`, decl.Options{Features: headerset.NewSet("default")})

	_, ok := items["Local"]
	assert.True(t, ok)
	_, ok = items["size_t"]
	assert.False(t, ok, "system header declarations are dropped by default")
}
