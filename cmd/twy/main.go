package main

import "twelveweeks/cmd/twy/root"

func main() {
	root.Execute()
}
