package main

import "github.com/swatchfile/swatch/internal/cli"

func main() {
	cli.Run()
}
