package main

import (
	"github.com/freejk/campscope/cmd"
)

func main() {
	cmd.Execute()
}
