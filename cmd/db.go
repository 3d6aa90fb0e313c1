package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/spf13/cobra"

	"github.com/freejk/campscope/pkg/storage"
)

// dbCmd represents the db command
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Interact with the local contact-status database",
}

func openStoreFromFlags(cmd *cobra.Command) (*storage.Store, error) {
	dbPath, _ := cmd.Flags().GetString("dbpath")
	path, err := resolveDBPath(dbPath)
	if err != nil {
		return nil, err
	}
	return storage.Open(path)
}

// markCmd represents the mark command
var markCmd = &cobra.Command{
	Use:   "mark <identifier>",
	Short: "Mark a record as contacted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStoreFromFlags(cmd)
		if err != nil {
			return err
		}
		defer store.Close()
		return store.Mark(context.Background(), args[0], time.Now())
	},
}

// unmarkCmd represents the unmark command
var unmarkCmd = &cobra.Command{
	Use:   "unmark <identifier>",
	Short: "Clear a record's contacted status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStoreFromFlags(cmd)
		if err != nil {
			return err
		}
		defer store.Close()
		return store.Unmark(context.Background(), args[0])
	},
}

// dbStatsCmd represents the stats command
var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print how many records are marked contacted",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStoreFromFlags(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		count, err := store.Count(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("%d records marked contacted\n", count)
		return nil
	},
}

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the contact-status map as JSON to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStoreFromFlags(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		data, err := store.ExportJSON(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge a JSON contact-status map into the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		store, err := openStoreFromFlags(cmd)
		if err != nil {
			return err
		}
		defer store.Close()
		return store.ImportJSON(context.Background(), data)
	},
}

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive shell to the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("dbpath")
		path, err := resolveDBPath(dbPath)
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("database file not found: %s", path)
		}

		// Check if sqlite3 is in PATH
		sqlitePath, err := exec.LookPath("sqlite3")
		if err != nil {
			return fmt.Errorf("sqlite3 command not found in your PATH. Please install it to use the db shell")
		}

		fmt.Println("--> Starting interactive shell... (Ctrl+D to exit)")
		c := exec.Command(sqlitePath, path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr

		return c.Run()
	},
}

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(markCmd)
	dbCmd.AddCommand(unmarkCmd)
	dbCmd.AddCommand(dbStatsCmd)
	dbCmd.AddCommand(exportCmd)
	dbCmd.AddCommand(importCmd)
	dbCmd.AddCommand(shellCmd)
	dbCmd.PersistentFlags().String("dbpath", "", "Path to the contact-status database")
}
