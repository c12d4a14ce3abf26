package main

import "github.com/strrl/feedback-lens/internal/cmd"

func main() {
	cmd.Execute()
}
