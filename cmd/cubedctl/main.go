package main

import "github.com/mcubed/cubed/internal/cli"

func main() {
	cli.Execute()
}
