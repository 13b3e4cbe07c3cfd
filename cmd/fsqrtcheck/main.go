package main

import "os"
import "fmt"

import "github.com/tinne26/evec/internal/cli"

func main() {
	cmd := cli.NewRootCommand()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
