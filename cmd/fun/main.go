package main

import (
	"github.com/shahdamer/My-Interpreters-Project/cmd/fun/commands"
)

func main() {
	commands.Execute()
}
