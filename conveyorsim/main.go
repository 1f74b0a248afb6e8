// Command conveyorsim simulates a production line conveyor belt.
package main

import "github.com/sarchlab/conveyorsim/conveyorsim/cmd"

func main() {
	cmd.Execute()
}
