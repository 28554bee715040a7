package main

import "github.com/strettolab/contrapunto/cmd"

func main() {
	cmd.Execute()
}
