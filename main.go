package main

import "gitlab.com/begraf/figconv/cmd"

func main() {
	cmd.Execute()
}
