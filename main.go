package main

import "github.com/shrawansher/Hillary-or-Trump/cli"

func main() {
	cli.Execute()
}
