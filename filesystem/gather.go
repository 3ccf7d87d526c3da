package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GatherRecursive returns all regular files below base whose name ends with
// extension. The extension is compared literally. A failing scan yields no files.
func GatherRecursive(base string, extension string) []string {
	var paths []string

	err := doublestar.GlobWalk(os.DirFS(base), "**/*", func(path string, d fs.DirEntry) error {
		if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), extension) {
			return nil
		}

		paths = append(paths, filepath.Join(base, filepath.FromSlash(path)))
		return nil
	}, doublestar.WithFilesOnly())
	if err != nil {
		return nil
	}

	sort.Strings(paths)

	return paths
}

// OutputPath replaces every occurrence of sourceExtension in the base name of
// path with targetExtension. The directory is kept.
func OutputPath(path string, sourceExtension string, targetExtension string) string {
	dir, name := filepath.Split(path)

	return dir + strings.ReplaceAll(name, sourceExtension, targetExtension)
}
