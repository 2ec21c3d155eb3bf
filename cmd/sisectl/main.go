package main

import "github.com/victorpuello/SISE/cmd/sisectl/cmd"

func main() {
	cmd.Execute()
}
