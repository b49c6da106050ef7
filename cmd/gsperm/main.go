package main

import (
	"os"

	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
