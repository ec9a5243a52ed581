package main

import (
	"fmt"
	"os"

	cc "github.com/ivanpirog/coloredcobra"
	"golang.org/x/term"
)

func main() {
	root := newRootCmd()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		cc.Init(&cc.Config{
			RootCmd:       root,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
