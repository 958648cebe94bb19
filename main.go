package main

import (
	"github.com/Dario48true/nvrpc/cmd"
)

func main() {
	cmd.Execute()
}
