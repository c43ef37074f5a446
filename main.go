package main

import "github.com/jake-scott/telldus-live/cmd"

func main() {
	cmd.Execute()
}
