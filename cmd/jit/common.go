package main

import (
	"errors"
	"os"

	"github.com/jitvcs/jit/internal/repo"
)

func cwd() (string, error) {
	return os.Getwd()
}

func openRepo() (*repo.Repository, error) {
	wd, err := cwd()
	if err != nil {
		return nil, err
	}
	return repo.DiscoverAndOpen(wd)
}

// reportable reports whether err is a semantic lookup failure spec.md §7
// says the CLI should print as a message with a clean exit, rather than
// abort the process. Returns the message and true when it is.
func reportable(err error) (string, bool) {
	var notFound *repo.NotFoundError
	if errors.As(err, &notFound) {
		return notFound.Error(), true
	}
	var detached *repo.DetachedHeadError
	if errors.As(err, &detached) {
		return detached.Error(), true
	}
	return "", false
}
