package main

import "firechat/internal/commands"

func main() {
	commands.Execute()
}
