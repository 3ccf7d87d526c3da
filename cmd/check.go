package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"gitlab.com/begraf/figconv/config"
	"gitlab.com/begraf/figconv/document"
	"gitlab.com/begraf/figconv/filesystem"
	"gitlab.com/begraf/figconv/inspect"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Print a YAML report of the figures each file would produce",
	Long: `Check converts every source file in memory, renders the result as markdown
and prints a YAML report of the <figure> elements found in the HTML.

A raw HTML block in markdown ends at the first blank line, so for a figure
whose caption contains a blank line only the part before it is reported.
The converted files themselves are not affected.`,
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

type checkReport struct {
	File    string            `yaml:"file"`
	Output  string            `yaml:"output"`
	Figures []inspect.Summary `yaml:"figures"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	root, err := resolveRootDirectory()
	if err != nil {
		return err
	}

	rewriter := document.NewRewriter(config.TagName())

	var reports []checkReport
	for _, path := range filesystem.GatherRecursive(root, config.SourceExtension()) {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read source file: %w", err)
		}

		figures, err := inspect.Figures([]byte(rewriter.Rewrite(string(source))))
		if err != nil {
			return fmt.Errorf("inspect '%s': %w", path, err)
		}

		reports = append(reports, checkReport{
			File:    relativeTo(root, path),
			Output:  relativeTo(root, filesystem.OutputPath(path, config.SourceExtension(), config.TargetExtension())),
			Figures: figures,
		})
	}

	return writeReport(cmd.OutOrStdout(), reports)
}

func writeReport(w io.Writer, reports []checkReport) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(reports); err != nil {
		return err
	}

	return enc.Close()
}

func relativeTo(root string, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}

	return filepath.ToSlash(rel)
}
