package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/freejk/campscope/internal/server"
	"github.com/freejk/campscope/pkg/storage"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the directory as a JSON API with a static front page",
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr, _ := cmd.Flags().GetString("listen")
		dbPath, _ := cmd.Flags().GetString("dbpath")

		loader, err := newLoader()
		if err != nil {
			return err
		}

		path, err := resolveDBPath(dbPath)
		if err != nil {
			return err
		}
		store, err := storage.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()

		srv := server.New(loader, store, viper.GetString("server.username"), viper.GetString("server.password"))
		return srv.Start(listenAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", ":8080", "HTTP listen address")
	serveCmd.Flags().String("dbpath", "", "Path to the contact-status database")
}
