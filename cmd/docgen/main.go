// Command docgen generates CLI reference documentation from the starters
// command definitions. Output is written to docs/cli-reference.md.
package main

import (
	"fmt"
	"os"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/starters/internal/commands"
)

func main() {
	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "starters",
		Usage:     "Manage agent conversation starters",
		UsageText: "starters [global options] command [command options]",
		Description: `Starters keeps a list of agents and the short prompts ("conversation
starters") offered to users when a chat with the agent begins.

Run 'starters new' to create an agent and 'starters edit <id>' to edit its
starters in an interactive form.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("STARTERS_LOG_LEVEL"),
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "path to log file",
				Sources: cli.EnvVars("STARTERS_LOG_FILE"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				Sources: cli.EnvVars("STARTERS_CONFIG"),
				Value:   "~/.config/starters/config.yaml",
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "path to data directory",
				Sources: cli.EnvVars("STARTERS_DATA_DIR"),
				Value:   "~/.local/share/starters",
			},
		},
	}

	root = commands.NewEditCmd(flags).Register(root)
	root = commands.NewNewCmd(flags).Register(root)
	root = commands.NewLsCmd(flags).Register(root)
	root = commands.NewShowCmd(flags).Register(root)
	root = commands.NewSetCmd(flags).Register(root)

	md, err := docs.ToMarkdown(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	outPath := "docs/cli-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}
