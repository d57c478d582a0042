package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/penwern/curate-museum-crosswalk/cmd"
	"github.com/penwern/curate-museum-crosswalk/pkg/version"
)

func main() {
	if err := fang.Execute(
		context.Background(),
		cmd.RootCmd,
		fang.WithVersion(version.Version()),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
