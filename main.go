package main

import "github.com/KunjShah95/gearguard/cmd"

func main() {
	cmd.Execute()
}
