package main

import (
	"os"

	"github.com/iwat/vibedump/internal/cmd"
)

func main() {
	appBuilder := cmd.NewAppBuilder()
	if err := cmd.RootCmd(appBuilder).Execute(); err != nil {
		os.Exit(1)
	}
}
