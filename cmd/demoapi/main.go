// demoapi - PolyRPC demo backend server
package main

import (
	"os"

	"github.com/polyrpc/demoapi/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
