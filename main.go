package main

import "github.com/inovacc/showcase/cmd"

func main() {
	cmd.Execute()
}
