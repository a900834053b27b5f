//go:build linux && !nox11

package main

import (
	"fmt"

	"github.com/rpgmk/displaylayer/internal/x11"
	"github.com/rpgmk/displaylayer/pkg/platform"
)

func listVisualConfigs(display string) ([]x11.VisualConfig, error) {
	d, err := platform.X11Driver{}.Open(display)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	ld, ok := d.(*platform.LinuxDisplay)
	if !ok {
		return nil, fmt.Errorf("unexpected display type %T", d)
	}
	return ld.VisualConfigs()
}
