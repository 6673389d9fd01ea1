package cli

import (
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// shell describes how to generate and install completions for one shell.
type shell struct {
	name    string
	install string // one-time setup command shown in the help text
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name:    "bash",
		install: "geiger completion bash > ~/.local/share/bash-completion/completions/geiger",
		gen:     func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	},
	{
		name:    "zsh",
		install: `geiger completion zsh > "${fpath[1]}/_geiger"`,
		gen:     func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	},
	{
		name:    "fish",
		install: "geiger completion fish > ~/.config/fish/completions/geiger.fish",
		gen:     func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	},
	{
		name:    "powershell",
		install: "geiger completion powershell >> $PROFILE",
		gen:     func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
	},
}

func shellNames() []string {
	names := make([]string, len(shells))
	for i, s := range shells {
		names[i] = s.name
	}
	return names
}

func completionHelp() string {
	var b strings.Builder
	b.WriteString("Generate a shell completion script for geiger.\n\n")
	b.WriteString("Completions cover subcommands, flags, and the names accepted by\n")
	b.WriteString("--output-format and --color. To install them once per user:\n\n")
	for _, s := range shells {
		b.WriteString("  " + s.name + ":\n    $ " + s.install + "\n")
	}
	b.WriteString("\nStart a new shell afterwards for the completions to load.\n")
	return b.String()
}

// completionCommand writes the completion script for the named shell to the
// command's output.
func (c *CLI) completionCommand() *cobra.Command {
	names := shellNames()
	return &cobra.Command{
		Use:                   "completion [" + strings.Join(names, "|") + "]",
		Short:                 "Generate shell completion scripts",
		Long:                  completionHelp(),
		DisableFlagsInUseLine: true,
		ValidArgs:             names,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			i := slices.IndexFunc(shells, func(s shell) bool { return s.name == args[0] })
			return shells[i].gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
