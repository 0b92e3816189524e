package main

import (
	"github.com/tty-tools/termprobe/pkg/core"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			core.WriteReport(err)
			panic(err)
		}
	}()

	core.Execute()
}
