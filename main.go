package main

import "github.com/iksnae/tree-extract/cmd"

func main() {
	cmd.Execute()
}
