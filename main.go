package main

import "github.com/avensia/inriver-bynder/cmd"

func main() {
	cmd.Execute()
}
