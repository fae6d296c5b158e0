package clang

import (
	"sync"

	libclang "github.com/go-clang/clang-v14/clang"
)

// ParseFlags is the bitmask libclang calls CXTranslationUnit_Flags.
// DetailedPreprocessingRecord must be set to observe macro definitions
// as cursors at all (spec §6 Input).
type ParseFlags uint32

const (
	FlagNone                               ParseFlags = 0
	FlagDetailedPreprocessingRecord        ParseFlags = 1 << 0
	FlagIncomplete                         ParseFlags = 1 << 1
	FlagPrecompiledPreamble                ParseFlags = 1 << 2
	FlagCacheCompletionResults             ParseFlags = 1 << 3
	FlagForSerialization                   ParseFlags = 1 << 4
	FlagCXXChainedPCH                      ParseFlags = 1 << 5
	FlagSkipFunctionBodies                 ParseFlags = 1 << 6
	FlagIncludeBriefCommentsInCodeCompletion ParseFlags = 1 << 7
)

// UnsavedFile is an in-memory overlay consumed by a parse call in place
// of a file's on-disk contents. The caller retains ownership of the
// underlying bytes for the duration of the call — Index.Parse does not
// retain a reference after it returns.
type UnsavedFile struct {
	Filename string
	Contents []byte
}

// Index is the exclusive owner of a native libclang index. Every
// TranslationUnit it parses keeps a reference to it (via its own
// lifetime discipline); the Index itself must not be disposed while any
// of those translation units are still alive.
type Index struct {
	native libclang.Index

	mu       sync.Mutex
	disposed bool
}

// NewIndex creates a fresh libclang index. excludePCHDecls skips
// declarations from precompiled headers when walking an AST;
// displayDiagnostics causes libclang to print diagnostics to stderr as
// it produces them, independent of whatever the driver does with
// TranslationUnit.Diagnostics().
func NewIndex(excludePCHDecls, displayDiagnostics bool) *Index {
	native := libclang.NewIndex(boolToCInt(excludePCHDecls), boolToCInt(displayDiagnostics))
	return &Index{native: native}
}

func boolToCInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// SetGlobalOptions sets the index-wide option bitmask (CXGlobalOpt_*).
func (ix *Index) SetGlobalOptions(opts uint32) {
	ix.native.SetGlobalOptions(opts)
}

// GlobalOptions reads back the index-wide option bitmask.
func (ix *Index) GlobalOptions() uint32 {
	return ix.native.GlobalOptions()
}

// Parse parses sourceFile with the given command-line arguments and
// overlay buffers, producing a TranslationUnit. A non-nil ErrorCode
// means libclang refused to produce any translation unit at all; partial
// failures (bad includes, unknown types, ...) still yield a TU and
// surface as diagnostics on it instead.
func (ix *Index) Parse(sourceFile string, args []string, unsaved []UnsavedFile, flags ParseFlags) (*TranslationUnit, error) {
	nativeUnsaved := make([]libclang.UnsavedFile, len(unsaved))
	for i, u := range unsaved {
		nativeUnsaved[i] = libclang.NewUnsavedFile(u.Filename, string(u.Contents))
	}

	var native libclang.TranslationUnit
	errCode := ix.native.ParseTranslationUnit2(sourceFile, args, nativeUnsaved, uint32(flags), &native)
	if errCode != libclang.Error_Success {
		return nil, errorCodeFromNative(errCode)
	}
	return newTranslationUnit(ix, native), nil
}

// ParseFromAST deserializes a translation unit previously saved with
// clang_saveTranslationUnit (e.g. for a precompiled module).
func (ix *Index) ParseFromAST(path string) (*TranslationUnit, error) {
	native := ix.native.CreateTranslationUnit(path)
	return newTranslationUnit(ix, native), nil
}

// Dispose releases the native index. Must happen after every
// TranslationUnit obtained from it has itself been disposed; disposing
// in the wrong order is a caller bug this package does not attempt to
// detect beyond libclang's own behavior.
func (ix *Index) Dispose() {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.disposed {
		return
	}
	ix.disposed = true
	ix.native.Dispose()
}
