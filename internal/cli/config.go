package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/bmcanvas/pkg/render/canvas"
)

// configCommand creates the config command, which prints the default render
// configuration as a starting point for --config files.
func (c *CLI) configCommand() *cobra.Command {
	var check string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the default render configuration as TOML",
		Long: `Config prints the default render configuration. Redirect it to a file, edit
the values you want to change and pass the file to 'render --config'.

With --check the given file is loaded and validated instead.`,
		Example: `  bmcanvas config > canvas.toml
  bmcanvas config --check canvas.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if check == "" {
				return canvas.DefaultConfig().WriteTOML(cmd.OutOrStdout())
			}
			if _, err := canvas.LoadConfig(check); err != nil {
				return err
			}
			c.Logger.Debug("config is valid", "file", check)
			printSuccess("%s is valid", check)
			return nil
		},
	}

	cmd.Flags().StringVar(&check, "check", "", "validate a TOML configuration file")
	return cmd
}
