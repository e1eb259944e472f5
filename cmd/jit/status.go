package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show new, modified, and deleted paths against the index",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}

			st, err := r.Status()
			if err != nil {
				return err
			}
			if st.Clean() {
				fmt.Println("nothing to commit, working tree clean")
				return nil
			}
			for _, p := range st.New {
				fmt.Println("new:      " + p)
			}
			for _, p := range st.Modified {
				fmt.Println("modified: " + p)
			}
			for _, p := range st.Deleted {
				fmt.Println("deleted:  " + p)
			}
			return nil
		},
	}
}
