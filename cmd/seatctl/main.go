package main

import "github.com/metinatakli/train-seat-reservation/internal/cli"

func main() {
	cli.Execute()
}
