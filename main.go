package main

import (
	"fmt"
	"os"

	"xiangqi/src/ui"
)

func main() {
	if err := ui.RunXiangqi(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
