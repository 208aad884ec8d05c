package main

import "github.com/dawsonlp/youtube-summary/cmd"

func main() {
	cmd.Execute()
}
