package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gitlab.com/begraf/figconv/building"
	"gitlab.com/begraf/figconv/config"
	"gitlab.com/begraf/figconv/filesystem"
)

var (
	okColor    = color.New(color.FgGreen)
	skipColor  = color.New(color.FgHiBlack)
	errorColor = color.New(color.FgRed, color.Bold)
	titleColor = color.New(color.FgCyan)
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert all source files below the repository root",
	Long: `Convert finds every source file below the repository root, rewrites its
<Figure> elements into <figure> blocks, removes the Figure import and writes
the result next to the source with the target extension.`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

// resolveRootDirectory returns the configured root or searches upwards from the
// working directory for the marker.
func resolveRootDirectory() (string, error) {
	if config.HasRootDirectory() {
		dir := filesystem.Abs(config.RootDirectory())
		if !filesystem.IsDirectory(dir) {
			return "", fmt.Errorf("path '%s' is not a directory", dir)
		}
		return dir, nil
	}

	root, err := filesystem.FindRootFromWorkingDirectory(config.RootMarker())
	if errors.Is(err, filesystem.ErrRootNotFound) {
		return "", fmt.Errorf("no '%s' directory in the working directory or any parent", config.RootMarker())
	}

	return root, err
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	root, err := resolveRootDirectory()
	if err != nil {
		return err
	}

	logger.Debug("root directory", "path", root)

	opts := building.Options{
		RootDirectory:   root,
		SourceExtension: config.SourceExtension(),
		TargetExtension: config.TargetExtension(),
		TagName:         config.TagName(),
		Jobs:            config.Jobs(),
		DryRun:          config.DryRun(),
		Logger:          logger,
	}

	res, err := building.Convert(cmd.Context(), opts)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), root, res, opts.DryRun)

	return nil
}

func printResult(w io.Writer, root string, res building.Result, dryRun bool) {
	if len(res.Files) == 0 {
		skipColor.Fprintf(w, "no %s files below %s\n", config.SourceExtension(), root)
		return
	}

	for _, f := range res.Files {
		rel, err := filepath.Rel(root, f.Output)
		if err != nil {
			rel = f.Output
		}

		if f.Changed {
			okColor.Fprintf(w, "  ✓ %s", rel)
			fmt.Fprintf(w, " (%d figures)\n", f.Figures)
		} else {
			skipColor.Fprintf(w, "  • %s (unchanged)\n", rel)
		}
	}

	verb := "converted"
	if dryRun {
		verb = "would convert"
	}

	titleColor.Fprintf(w, "%s %d files, %d figures\n", verb, len(res.Files), res.Figures())
}
