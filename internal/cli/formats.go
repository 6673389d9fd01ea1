package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/geiger/pkg/format"
)

var formatDescriptions = map[format.OutputFormat]string{
	format.ASCII:          "tree restricted to 7-bit characters",
	format.JSON:           "machine-readable report",
	format.GitHubMarkdown: "tree in a fenced code block, without colors",
	format.Ratio:          "table with the safe share of each package's code",
	format.UTF8:           "tree with box-drawing branches and emoji",
}

// formatsCommand creates the formats command listing --output-format values.
func (c *CLI) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range format.OutputFormats() {
				f, err := format.ParseOutputFormat(name)
				if err != nil {
					return err
				}
				desc := formatDescriptions[f]
				if f == format.DefaultOutputFormat {
					desc += " (default)"
				}
				printKeyValue(out, name, desc)
			}
			printNewline(out)
			printNextStep(out, "Select one with", appName+" tree --output-format <name> <report.json>")
			return nil
		},
	}
}
