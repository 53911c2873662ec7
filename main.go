// ./main.go
package main

import (
	"github.com/xkilldash9x/clickpoint/cmd"
)

func main() {
	cmd.Execute()
}
