package main

import "modlist-builder/cmd"

func main() {
	cmd.Execute()
}
