//go:build !js && !wasm
// +build !js,!wasm

package gdialog

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
)

type Result struct {
	Path string
	Name string
	Data []byte
}

func OpenLayout(title string) (Result, error) {
	path, err := dialog.File().Title(title).Filter("Layout (*.yaml)", "yaml", "yml").Load()
	if err != nil {
		return Result{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path: path,
		Name: filepath.Base(path),
		Data: b,
	}, nil
}

func IsCancelled(err error) bool {
	return errors.Is(err, dialog.ErrCancelled)
}
