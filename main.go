package main

import (
	"os"

	"github.com/thenoetrevino/yearpick/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
