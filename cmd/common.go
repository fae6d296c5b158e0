package cmd

import (
	"fmt"
	"os"
	"reflect"
	"runtime"
	"strings"

	"github.com/daedaleanai/cobra"
	"github.com/pkg/errors"

	"github.com/daedaleanai/cbindgen/internal/logging"
	"github.com/daedaleanai/cbindgen/util"
)

var rootCmd = &cobra.Command{
	Use:   "cbindgen",
	Short: "cbindgen translates a C header set into a feature-gated target-language source tree.",
	Long: `cbindgen ingests a C (and Objective-C/C++ surface) header set through a libclang
translation unit, walks its AST and preprocessor tokens, and emits declarations
faithful to the C ABI: structures, unions, enums, typedefs, function prototypes,
constants, and the subset of #define macros expressible as typed constants.`,
	Version: fmt.Sprintf("%d.%d.%d", util.Version.Major, util.Version.Minor, util.Version.Revision),
}

// Initializes the root command's persistent flags.
func init() {
	rootCmd.PersistentFlags().BoolVarP(&logging.Verbose, "verbose", "v", false, "Enable verbose logs.")
}

// RunRootCommand runs the root command.
func RunRootCommand() error {
	return rootCmd.Execute()
}

// RunAndHandleError returns a RunE function that runs the specified RunE
// function and exits if it returns an error, exactly as reqtraq's own
// RunAndHandleError does — cobra otherwise conflates a RunE error with
// an arguments-parsing error (see
// https://github.com/spf13/cobra/issues/914), so this codebase handles
// the exit itself.
func RunAndHandleError(runE func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if errRun := runE(cmd, args); errRun != nil {
			s := runtime.FuncForPC(reflect.ValueOf(runE).Pointer()).Name()
			s = s[strings.LastIndex(s, "/")+1:]
			fmt.Println(errors.Wrap(errRun, s))
			os.Exit(1)
		}
		return nil
	}
}
