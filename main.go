package main

import (
	"fmt"
	"os"

	"fjacquet/ledger-taxonomy/cmd/add"
	"fjacquet/ledger-taxonomy/cmd/deps"
	"fjacquet/ledger-taxonomy/cmd/filters"
	"fjacquet/ledger-taxonomy/cmd/list"
	"fjacquet/ledger-taxonomy/cmd/merge"
	"fjacquet/ledger-taxonomy/cmd/query"
	"fjacquet/ledger-taxonomy/cmd/remove"
	"fjacquet/ledger-taxonomy/cmd/rename"
	"fjacquet/ledger-taxonomy/cmd/root"
	"fjacquet/ledger-taxonomy/cmd/stats"
	"fjacquet/ledger-taxonomy/internal/config"
)

func init() {
	// 1. Load environment variables before any logger is built
	config.LoadEnv()

	// 2. Configure the global logrus level from LOG_LEVEL
	config.ConfigureGlobalLogging()

	// 3. Initialize root command flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(rename.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(merge.Cmd)
	root.Cmd.AddCommand(deps.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(query.Cmd)
	root.Cmd.AddCommand(stats.Cmd)
	root.Cmd.AddCommand(filters.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
