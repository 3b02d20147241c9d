package main

import (
	"os"
)

func main() {
	os.Exit(RunCmdline(os.Args))
}
