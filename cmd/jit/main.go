// Command jit is a thin cobra shell over internal/repo: each subcommand
// discovers (or, for init, creates) a repository and delegates to one
// Repository method, printing whatever that method returns. The two-file
// form of diff opens no repository and calls repo.DiffFiles directly.
//
// Grounded on the overall shape of other_examples' cobra CLIs
// (cmd-commit.go.go's Command + RunE + Flags().StringVarP pattern) and on
// original_source/main.cpp's Parser/Command dispatch, which this mirrors
// one callback per verb.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	root := &cobra.Command{
		Use:           "jit",
		Short:         "A content-addressed version control core",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newCommitCmd(),
		newLogCmd(),
		newDiffCmd(),
		newStatusCmd(),
		newCheckoutCmd(),
		newBranchCmd(),
		newMergeCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
