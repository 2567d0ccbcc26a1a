package main

import "github.com/notargets/fluxlab/cmd"

func main() {
	cmd.Execute()
}
