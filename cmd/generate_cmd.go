package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/daedaleanai/cobra"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/daedaleanai/cbindgen/clang"
	"github.com/daedaleanai/cbindgen/config"
	"github.com/daedaleanai/cbindgen/decl"
	"github.com/daedaleanai/cbindgen/diagnostics"
	"github.com/daedaleanai/cbindgen/headerset"
	"github.com/daedaleanai/cbindgen/internal/logging"
	"github.com/daedaleanai/cbindgen/linepipes"
	"github.com/daedaleanai/cbindgen/output"
)

var fConfigPath string
var fTidy bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Translate the configured header set into one output file per header.",
	Long: `generate reads cbindgen_config.json, parses every configured header under every
feature tag it is associated with, and writes one output file per originating
header stem into the configured output directory.

Extra clang arguments may be passed after a "--" separator; they are appended
to every invocation's own argument list and forwarded verbatim to libclang.`,
	RunE: RunAndHandleError(runGenerate),
}

func init() {
	generateCmd.Flags().StringVarP(&fConfigPath, "config", "c", "cbindgen_config.json", "Path to cbindgen_config.json")
	generateCmd.Flags().BoolVar(&fTidy, "tidy", false, "Run rustfmt over each emitted file once it is written.")
	rootCmd.AddCommand(generateCmd)
}

// runGenerate is the driver spec §2 describes: Index -> parse -> root
// cursor -> decl.Walk, once per configured invocation, accumulating into
// one shared output.Aggregator, then emitting one file per header.
func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.ParseFile(fConfigPath)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	invocations := cfg.Invocations.All()
	universe := headerset.Set{}
	for _, inv := range invocations {
		universe = universe.Union(headerset.NewSet(inv.Features))
	}

	agg := output.NewAggregator()

	for _, inv := range invocations {
		if err := runInvocation(cfg, inv, universe, agg, args); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return errors.Wrapf(err, "creating output directory %s", cfg.OutputDir)
	}

	byHeader := agg.ByHeader()
	for header, items := range byHeader {
		path := filepath.Join(cfg.OutputDir, header+".rs")
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "creating %s", path)
		}
		err = output.Emit(f, items, universe)
		f.Close()
		if err != nil {
			return errors.Wrapf(err, "emitting %s", path)
		}
		fmt.Printf("%s: %d declarations\n", path, len(items))

		if fTidy {
			if err := tidy(path); err != nil {
				fmt.Printf("rustfmt %s: %s\n", path, err)
			}
		}
	}

	if errs := agg.Errors(); errs != nil {
		reportIssues(errs)
		return errors.New("one or more declarations failed to translate")
	}
	return nil
}

// runInvocation parses every header in inv under its own feature tag
// and walks its declarations into agg. extraArgs is forwarded clang
// arguments from a trailing "--" on the command line — spec §6 "a list
// of command-line arguments forwarded verbatim".
func runInvocation(cfg config.Config, inv headerset.Invocation, universe headerset.Set, agg *output.Aggregator, extraArgs []string) error {
	index := clang.NewIndex(true, false)
	defer index.Dispose()

	headerPaths := make(map[string]bool, len(inv.Headers))
	for _, h := range inv.Headers {
		headerPaths[clang.NormalizePath(h.Path)] = true
	}

	opts := decl.Options{
		Headers:               headerPaths,
		IncludeSystemHeaders:  cfg.IncludeSystemHeaders,
		StubUnsupportedMacros: cfg.StubUnsupportedMacros,
		Features:              headerset.NewSet(inv.Features),
	}

	for _, h := range inv.Headers {
		parseArgs := append(append([]string{}, h.Args...), extraArgs...)
		tu, err := index.Parse(h.Path, parseArgs, nil, cfg.ParseFlags())
		if err != nil {
			return errors.Wrapf(err, "parsing %s", h.Path)
		}
		decl.Walk(tu, opts, agg)
		tu.Dispose()
	}
	return nil
}

// tidy reformats an emitted file in place with rustfmt, via linepipes;
// rustfmt's output is collected and discarded, and only a failure is
// returned — mirrors how reqtraq's own report commands shell out to
// external tools through linepipes.Run.
func tidy(path string) error {
	linepipes.Verbose = logging.Verbose
	lines, errs := linepipes.Run("rustfmt", path)
	_, err := linepipes.All(lines, errs)
	return err
}

// reportIssues prints the per-item errors an Aggregator accumulated,
// syntax-highlighting conflicting declarations via output.PrintConflict
// — spec §4.4 "Failure handling": surfaced in the driver's exit
// summary without aborting the overall pipeline.
func reportIssues(errs error) {
	merr, ok := errs.(*multierror.Error)
	if !ok {
		fmt.Println(errs)
		return
	}
	for _, err := range merr.Errors {
		issue, ok := err.(diagnostics.Issue)
		if !ok {
			fmt.Println(err)
			continue
		}
		if issue.Kind == diagnostics.KindConflictingDeclaration {
			output.PrintConflict(os.Stdout, issue, issue.ExistingText, issue.IncomingText)
			continue
		}
		fmt.Printf("%s: %s\n", issue.Kind, issue)
	}
}
