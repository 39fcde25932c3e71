package main

import "github.com/Conceptual-Machines/magda-harmony/internal/cli"

func main() {
	cli.Execute()
}
