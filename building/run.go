package building

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"gitlab.com/begraf/figconv/config"
	"gitlab.com/begraf/figconv/document"
	"gitlab.com/begraf/figconv/figure"
	"gitlab.com/begraf/figconv/filesystem"
)

type Options struct {
	RootDirectory   string
	SourceExtension string
	TargetExtension string
	TagName         string
	Jobs            int  // values below 2 process files one after another
	DryRun          bool // convert but do not write outputs
	Logger          *slog.Logger
}

func (opts *Options) setDefaults() {
	if opts.SourceExtension == "" {
		opts.SourceExtension = config.DefaultSourceExtension()
	}
	if opts.TargetExtension == "" {
		opts.TargetExtension = config.DefaultTargetExtension()
	}
	if opts.TagName == "" {
		opts.TagName = figure.DefaultTagName
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
}

type FileResult struct {
	Input   string
	Output  string
	Figures int
	Changed bool
}

type Result struct {
	Files []FileResult
}

func (r Result) Figures() int {
	n := 0
	for _, f := range r.Files {
		n += f.Figures
	}

	return n
}

// Convert rewrites every source file below opts.RootDirectory into its output
// file. The first read or write failure aborts the run.
func Convert(ctx context.Context, opts Options) (Result, error) {
	opts.setDefaults()

	if !filesystem.IsDirectory(opts.RootDirectory) {
		return Result{}, fmt.Errorf("path '%s' is not a directory", opts.RootDirectory)
	}

	paths := filesystem.GatherRecursive(opts.RootDirectory, opts.SourceExtension)
	opts.Logger.Debug("gathered source files", slog.String("root", opts.RootDirectory), slog.Int("count", len(paths)))

	state := &convertState{
		Options:  opts,
		rewriter: document.NewRewriter(opts.TagName),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Jobs, 1))

	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := state.convertFile(path)
			if err != nil {
				return err
			}

			state.add(res)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return state.result(), err
	}

	return state.result(), nil
}

type convertState struct {
	Options
	rewriter *document.Rewriter

	mu    sync.Mutex
	files []FileResult
}

func (state *convertState) add(res FileResult) {
	state.mu.Lock()
	defer state.mu.Unlock()

	state.files = append(state.files, res)
}

func (state *convertState) result() Result {
	state.mu.Lock()
	defer state.mu.Unlock()

	files := make([]FileResult, len(state.files))
	copy(files, state.files)

	sort.Slice(files, func(i, j int) bool {
		return files[i].Input < files[j].Input
	})

	return Result{Files: files}
}

func (state *convertState) convertFile(path string) (FileResult, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, fmt.Errorf("read source file: %w", err)
	}

	text := string(source)
	out, n := state.rewriter.RewriteCount(text)

	res := FileResult{
		Input:   path,
		Output:  filesystem.OutputPath(path, state.SourceExtension, state.TargetExtension),
		Figures: n,
		Changed: out != text,
	}

	if state.DryRun {
		state.Logger.Info("would convert", slog.String("input", res.Input), slog.String("output", res.Output), slog.Int("figures", n))
		return res, nil
	}

	if err := os.WriteFile(res.Output, []byte(out), 0o644); err != nil {
		return FileResult{}, fmt.Errorf("write output file: %w", err)
	}

	state.Logger.Info("converted", slog.String("input", res.Input), slog.String("output", res.Output), slog.Int("figures", n))

	return res, nil
}
