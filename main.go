package main

import "github.com/mmuldo/colorconv/cmd"

func main() {
	cmd.Execute()
}
