package engine

import (
	goerrors "github.com/goliatone/go-errors"
)

func usageError() error {
	return goerrors.New("not enough arguments", goerrors.CategoryBadInput)
}

func missingError(path string, source error) error {
	return goerrors.Wrap(source, goerrors.CategoryNotFound, "input does not exist").
		WithMetadata(map[string]any{"path": path})
}

func ioError(source error, message string) error {
	if source == nil {
		return nil
	}
	return goerrors.Wrap(source, goerrors.CategoryExternal, message)
}
