package main

import (
	"github.com/aiguessr/aiguessr-go/internal/cli"
)

func main() {
	cli.Execute()
}
