// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"zodiac/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
