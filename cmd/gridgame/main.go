package main

import "github.com/mcoot/gridgame-go/internal/cli"

func main() {
	cli.Execute()
}
