package main

import "library/cmd"

func main() {
	cmd.Execute()
}
