package main

import "github.com/liutong011025-cloud/CWriteV5.5/cmd/labsite/cmd"

func main() {
	cmd.Execute()
}
