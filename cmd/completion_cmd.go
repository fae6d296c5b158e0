package cmd

import (
	"os"

	"github.com/daedaleanai/cobra"
	"github.com/pkg/errors"
)

// shellCompletionGenerators maps each supported shell name to the cobra
// generator that writes its completion script to stdout. Keeping this as
// a table rather than a switch lets completionCmd's ValidArgs and this
// dispatch stay in sync by construction instead of via two hand-kept lists.
var shellCompletionGenerators = map[string]func(*cobra.Command) error{
	"bash": func(root *cobra.Command) error { return root.GenBashCompletion(os.Stdout) },
	"zsh":  func(root *cobra.Command) error { return root.GenZshCompletion(os.Stdout) },
	"fish": func(root *cobra.Command) error { return root.GenFishCompletion(os.Stdout, true) },
}

func supportedShells() []string {
	shells := make([]string, 0, len(shellCompletionGenerators))
	for name := range shellCompletionGenerators {
		shells = append(shells, name)
	}
	return shells
}

var completionCmd = &cobra.Command{
	Use:   "completion bash|zsh|fish",
	Short: "Generate a shell completion script for cbindgen",
	Long: `Prints a completion script for the given shell to stdout.

Bash:
  $ source <(cbindgen completion bash)
  # persist across sessions (Linux):
  $ cbindgen completion bash > /etc/bash_completion.d/cbindgen
  # persist across sessions (macOS):
  $ cbindgen completion bash > /usr/local/etc/bash_completion.d/cbindgen

Zsh:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc   # once, if not already enabled
  $ cbindgen completion zsh > "${fpath[1]}/_cbindgen"    # once per machine
  # start a new shell to pick it up

fish:
  $ cbindgen completion fish | source
  $ cbindgen completion fish > ~/.config/fish/completions/cbindgen.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             supportedShells(),
	Args:                  cobra.ExactValidArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, ok := shellCompletionGenerators[args[0]]
		if !ok {
			return errors.Errorf("no completion generator registered for shell %q", args[0])
		}
		return gen(cmd.Root())
	},
	Hidden: true,
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
