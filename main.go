package main

import "github.com/rodizioboard/rodizio/cmd"

func main() {
	cmd.Execute()
}
