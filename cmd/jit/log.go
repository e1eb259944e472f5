package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show commit history from HEAD",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}

			entries, err := r.Log()
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Printf("%s %s\n", e.Hash, e.Message)
			}
			return nil
		},
	}
}
