package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/freejk/campscope/internal/utils"
	"github.com/freejk/campscope/pkg/gviz"
	"github.com/freejk/campscope/pkg/source"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "campscope",
	Short: "A filterable outreach directory fed by a shared spreadsheet.",
	Long: `campscope ingests an organization directory from a shared spreadsheet
(two tabs: campaigns and data), normalizes it into a clean sorted dataset
scoped to one campaign, and tracks which organizations you already
contacted in a local database.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.campscope.yaml)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".campscope")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := filepath.Join(home, ".campscope.yaml")
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default empty values for all keys
	viper.SetDefault("sheets.id", "")
	viper.SetDefault("sheets.base_url", gviz.DefaultBaseURL)
	viper.SetDefault("sheets.transport", "json")
	viper.SetDefault("source", "remote")
	viper.SetDefault("campaign", source.FixtureCampaignName)
	viper.SetDefault("http.timeout_seconds", 30)
	viper.SetDefault("http.retries", 0)
	viper.SetDefault("server.username", "")
	viper.SetDefault("server.password", "")
	viper.SetDefault("db.path", "")

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}

// newLoader builds the configured load pipeline. With no sheet ID (or
// source: fixture) the built-in sample data is used instead of the
// remote spreadsheet.
func newLoader() (*source.Loader, error) {
	campaignName := viper.GetString("campaign")
	if campaignName == "" {
		return nil, fmt.Errorf("no campaign configured: set 'campaign' in the config file")
	}

	sheetID := viper.GetString("sheets.id")
	if viper.GetString("source") == "fixture" || sheetID == "" {
		utils.Log.Debug("No spreadsheet configured, using fixture data")
		return &source.Loader{Source: source.NewFixtureSource(), CampaignName: campaignName}, nil
	}

	transport := gviz.Transport(viper.GetString("sheets.transport"))
	switch transport {
	case gviz.TransportCSV, gviz.TransportJSON:
	default:
		return nil, fmt.Errorf("invalid sheets.transport %q (want csv or json)", transport)
	}

	timeout := time.Duration(viper.GetInt("http.timeout_seconds")) * time.Second
	client := gviz.NewClient(sheetID, timeout, viper.GetInt("http.retries"))
	client.BaseURL = viper.GetString("sheets.base_url")

	return &source.Loader{
		Source:       source.NewRemoteSource(client, transport),
		CampaignName: campaignName,
	}, nil
}

// resolveDBPath picks the contact-status database location: flag, then
// config, then ~/.campscope.sqlite.
func resolveDBPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if p := viper.GetString("db.path"); p != "" {
		return p, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".campscope.sqlite"), nil
}
