package config

import (
	"github.com/spf13/viper"
	"gitlab.com/begraf/figconv/figure"
)

var (
	KeyRootDirectory   = "root.directory"
	KeyRootMarker      = "root.marker"
	KeySourceExtension = "source.extension"
	KeyTargetExtension = "target.extension"
	KeyTagName         = "figure.tag"
	KeyJobs            = "convert.jobs"
	KeyDryRun          = "convert.dryrun"
	KeyLogLevel        = "log.level"
)

// SetDefaults registers the default values, which reproduce the plain
// behaviour: run from within a git tree and convert .mdx to .md.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyRootMarker, DefaultRootMarker())
	v.SetDefault(KeySourceExtension, DefaultSourceExtension())
	v.SetDefault(KeyTargetExtension, DefaultTargetExtension())
	v.SetDefault(KeyTagName, figure.DefaultTagName)
	v.SetDefault(KeyJobs, 1)
	v.SetDefault(KeyLogLevel, "info")
}

func HasRootDirectory() bool {
	return viper.GetString(KeyRootDirectory) != ""
}

func RootDirectory() string {
	return viper.GetString(KeyRootDirectory)
}

func RootMarker() string {
	return viper.GetString(KeyRootMarker)
}

func SourceExtension() string {
	return viper.GetString(KeySourceExtension)
}

func TargetExtension() string {
	return viper.GetString(KeyTargetExtension)
}

func TagName() string {
	return viper.GetString(KeyTagName)
}

func Jobs() int {
	return viper.GetInt(KeyJobs)
}

func DryRun() bool {
	return viper.GetBool(KeyDryRun)
}

func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

func DefaultRootMarker() string {
	return ".git"
}

func DefaultSourceExtension() string {
	return ".mdx"
}

func DefaultTargetExtension() string {
	return ".md"
}
