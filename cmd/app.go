// Package cmd implements the CLI application to manage an inventory.
package cmd

import "github.com/google/subcommands"

// Commands lists the subcommands of the inv tool.
// A main package registers them on a Commander and executes the
// user-selected one.
var Commands = []subcommands.Command{
	&menuCmd{},
	&topicCmd{},
}
