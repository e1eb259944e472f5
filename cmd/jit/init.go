package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jitvcs/jit/internal/repo"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a new repository in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := cwd()
			if err != nil {
				return err
			}

			if _, err := repo.Init(wd); err != nil {
				if errors.Is(err, repo.ErrAlreadyExists) {
					fmt.Println(err)
					return nil
				}
				return err
			}
			log.WithField("dir", wd).Info("initialized empty repository")
			return nil
		},
	}
}
