package main

import "github.com/algokata/algokata/cmd"

func main() {
	cmd.Execute()
}
