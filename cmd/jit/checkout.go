package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <branch | commit>",
		Short: "Switch the working tree, index, and HEAD to a branch or commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}
			if err := r.Lock(); err != nil {
				return err
			}
			defer r.Unlock()

			if err := r.Checkout(args[0]); err != nil {
				if msg, ok := reportable(err); ok {
					fmt.Println(msg)
					return nil
				}
				return err
			}
			return nil
		},
	}
}
