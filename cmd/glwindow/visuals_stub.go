//go:build !linux || nox11

package main

import (
	"errors"

	"github.com/rpgmk/displaylayer/internal/x11"
)

func listVisualConfigs(string) ([]x11.VisualConfig, error) {
	return nil, errors.New("this build has no X11 backend")
}
