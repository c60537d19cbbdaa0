package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/noteboard/internal/version"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of noteboard",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v := version.Effective(Version)
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "noteboard version %s (%s install)\n", v, version.DetectInstallMethod())
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "print only the version")
	return cmd
}
