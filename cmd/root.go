package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gitlab.com/begraf/figconv/config"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd converts the current repository when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "figconv",
	Short:         "Rewrite <Figure> components in .mdx files into plain markdown",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorColor.Sprint("Error: ")+err.Error())
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./.figconv.yaml or $HOME/.figconv.yaml)")
	flags.StringP("root-dir", "r", "", "Directory to convert (default is the enclosing repository root)")
	flags.String("marker", config.DefaultRootMarker(), "Directory marking the repository root")
	flags.String("source-ext", config.DefaultSourceExtension(), "Extension of the source files")
	flags.String("target-ext", config.DefaultTargetExtension(), "Extension replacing the source extension in output files")
	flags.String("tag", "Figure", "Name of the element to rewrite")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.IntP("jobs", "j", 1, "Number of files converted in parallel")
	flags.BoolP("dry-run", "n", false, "Convert in memory without writing output files")

	mustBind(config.KeyRootDirectory, flags.Lookup("root-dir"))
	mustBind(config.KeyRootMarker, flags.Lookup("marker"))
	mustBind(config.KeySourceExtension, flags.Lookup("source-ext"))
	mustBind(config.KeyTargetExtension, flags.Lookup("target-ext"))
	mustBind(config.KeyTagName, flags.Lookup("tag"))
	mustBind(config.KeyLogLevel, flags.Lookup("log-level"))
	mustBind(config.KeyJobs, flags.Lookup("jobs"))
	mustBind(config.KeyDryRun, flags.Lookup("dry-run"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in the working and home directory with name ".figconv" (without extension).
		if dir, err := os.Getwd(); err == nil {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".figconv")
	}

	viper.SetEnvPrefix("figconv")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		newLogger().Debug("using config file", "path", viper.ConfigFileUsed())
	}
}
