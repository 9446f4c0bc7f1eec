package main

import "github.com/jmgilman/fileaccess/cmd/fileaccess/app/cmd"

func main() {
	cmd.Execute()
}
