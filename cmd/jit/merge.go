package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <branch>",
		Short: "Merge another branch into the current branch",
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

			result, err := r.MergeBranch(args[0])
			if err != nil {
				if msg, ok := reportable(err); ok {
					fmt.Println(msg)
					return nil
				}
				return err
			}

			if result.FastForward {
				fmt.Println("performed fast-forward merge")
				log.WithField("branch", args[0]).Info("fast-forwarded")
				return nil
			}
			fmt.Println("merged with conflicts; resolve and commit")
			log.WithField("branch", args[0]).Info("performed divergent merge")
			return nil
		},
	}
}
