package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/giocrisrai/inventory/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `inv topic [<topic>...]

  Shows documentation for the given topics, or the readme when none is
  given. Use "*" to show everything.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	// Render topic by topic, so a bad name is reported without losing
	// the topics already shown.
	for _, topic := range topics {
		doc, err := docs.GetTopic(topic)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\nRun \"inv topic\" for the list of available topics.\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(doc)
	}

	return subcommands.ExitSuccess
}
