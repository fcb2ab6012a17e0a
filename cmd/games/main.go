// Command games runs the games API.
//
//	games            # same as "games serve"
//	games serve      # start the HTTP service
//	games migrate    # create the games collection and exit
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "games",
	Short: "HTTP service storing a list of games in MongoDB",
	Long: `games exposes GET/POST /games and DELETE /games/:id backed by MongoDB.

Configuration comes from the environment (and a .env file when present):
  MONGO_USER, MONGO_PASSWORD, MONGO_HOST, MONGO_DB
  GAMES_<SECTION>__<FIELD>, e.g. GAMES_SERVER__PORT=8080
`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
