package main

import "github.com/alexgpeppe/io-functions-services/cmd"

func main() {
	cmd.Execute()
}
