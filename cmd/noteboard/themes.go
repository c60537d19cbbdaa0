package main

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/marcus/noteboard/internal/styles"
	"github.com/marcus/noteboard/internal/theme"
)

func newThemesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the themes and their resolved colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			start := theme.ResolveTheme(cfg, "")

			table := uitable.New()
			table.MaxColWidth = 20
			table.AddRow("", "THEME", "FOREGROUND", "BACKGROUND", "BUTTON", "BUTTON TEXT", "CONTRAST")

			for _, name := range styles.ListThemes() {
				r := styles.GetTheme(name).WithOverrides(start.Overrides).Resolve()
				c := r.Colors
				marker := ""
				if name == start.BaseName {
					marker = "*"
				}
				table.AddRow(marker, r.DisplayName, c.Foreground, c.Background, c.ButtonBackground, c.ButtonColor,
					fmt.Sprintf("%.1f:1", styles.ContrastRatio(c.Foreground, c.Background)))
			}

			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}
