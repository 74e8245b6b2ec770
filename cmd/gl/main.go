package main

import "gamelife/cmd/gl/root"

func main() {
	root.Execute()
}
