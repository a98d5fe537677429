package main

import "context"

type changeLister interface {
	ChangedFiles(ctx context.Context) (changedFiles []string, err error)
}

type repoLocator interface {
	TopLevel(ctx context.Context) (rootDir string, err error)
}
