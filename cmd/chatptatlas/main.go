// Command chatptatlas runs the ChatPTAtlas demo chat in the terminal.
package main

import "github.com/diogo/chatptatlas/internal/commands"

func main() {
	commands.Execute()
}
