package cli

import (
	"fmt"

	"github.com/riordanpawley/popup/internal/config"
	"github.com/spf13/cobra"
)

// configCommand creates the "config" command, which prints the effective
// configuration after defaults and flags are applied.
func (c *CLI) configCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			data, err := config.MarshalVersionedConfig(cfg, config.Format(format))
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = c.out.Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatYAML), "output format: yaml, toml or json")

	return cmd
}
