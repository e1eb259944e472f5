package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jitvcs/jit/internal/repo"
)

// newDiffCmd implements all three calling conventions original_source's
// diff callback supports: no args (index vs HEAD), one arg (HEAD vs an
// arbitrary commit digest), two args (raw file-vs-file diff).
func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff [commit | file1 file2]",
		Short: "Show differences between trees or files",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				lines, err := repo.DiffFiles(args[0], args[1])
				if err != nil {
					return err
				}
				printLines(lines)
				return nil
			}

			r, err := openRepo()
			if err != nil {
				return err
			}

			var lines []string
			if len(args) == 1 {
				lines, err = r.DiffHeadVsCommit(args[0])
			} else {
				lines, err = r.DiffIndexVsHead()
			}
			if err != nil {
				if msg, ok := reportable(err); ok {
					fmt.Println(msg)
					return nil
				}
				return err
			}
			printLines(lines)
			return nil
		},
	}
}

func printLines(lines []string) {
	for _, l := range lines {
		fmt.Println(l)
	}
}
