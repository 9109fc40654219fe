package main

import "github.com/guimove/stochpack/cmd"

func main() {
	cmd.Execute()
}
