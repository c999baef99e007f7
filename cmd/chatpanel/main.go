// Command chatpanel is a terminal chat panel for the Gemini API.
package main

import "github.com/diogo/chatpanel/internal/commands"

func main() {
	commands.Execute()
}
