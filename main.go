package main

import "github.com/fossabot/Tsundoku/cmd"

func main() {
	cmd.Execute()
}
