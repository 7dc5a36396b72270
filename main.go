package main

import "github.com/Rorical/ChairFinder/cmd"

func main() {
	cmd.Execute()
}
