package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tollbook/internal/interchange"
)

func interchangesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interchanges [filter]",
		Short: "List the known interchange names",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			filter := ""
			if len(args) > 0 {
				filter = args[0]
			}
			names := interchange.Filter(filter)
			if len(names) == 0 {
				return fmt.Errorf("no interchange matches %q", filter)
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}
