package cmd

import (
	"fmt"

	"github.com/daedaleanai/cobra"

	"github.com/daedaleanai/cbindgen/clang"
	"github.com/daedaleanai/cbindgen/util"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print cbindgen's own version alongside the linked libclang's version.",
	RunE: RunAndHandleError(func(cmd *cobra.Command, args []string) error {
		fmt.Printf("cbindgen %d.%d.%d\n", util.Version.Major, util.Version.Minor, util.Version.Revision)
		fmt.Println(clang.Version())
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
