// Command luatable regenerates the mod's Lua tables and runs the related
// asset chores.
package main

import (
	"context"
	"io"
	"os"
	"runtime/debug"

	"github.com/goliatone/go-luatable/internal/cli"
	"github.com/goliatone/go-luatable/pkg/notify"
)

var version = "dev"

func main() {
	if code := runSafely(os.Args[1:], runWithArgs, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

func runSafely(args []string, runner func([]string) int, errWriter io.Writer) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			notify.Errorf(errWriter, "panic recovered: %v\n%s", r, debug.Stack())
			exitCode = 1
		}
	}()
	return runner(args)
}

func runWithArgs(args []string) int {
	rootCmd := cli.NewRootCmd(version)
	rootCmd.SetArgs(args)
	rootCmd.SetContext(context.Background())

	if err := cli.Execute(rootCmd); err != nil {
		notify.Errorf(rootCmd.ErrOrStderr(), "%v", err)
		return 1
	}
	return 0
}
