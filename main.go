// Command aworld runs the Another World bytecode virtual machine.
package main

import "github.com/mkenney-dev/aworld/cmd"

func main() {
	cmd.Execute()
}
