package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/katalvlaran/markerdict/dictionary"
	"github.com/katalvlaran/markerdict/marker"
	"github.com/katalvlaran/markerdict/regions"
	"github.com/katalvlaran/markerdict/render"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	out, errOut io.Writer
	configPath  string
	cfg         Config
	log         *slog.Logger
}

// newRootCmd wires the command tree. out receives command output, errOut
// receives logs.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:   "markergen",
		Short: "Build and render rotation-distinct square marker dictionaries",
		Long: `markergen enumerates every n×n black/white pattern, drops patterns that
equal one of their own 90° rotations, keeps one representative per rotation
class and prints or renders the resulting dictionary.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (flags override its values)")
	pf.Int("bits", 9, "bits per marker; must be a perfect square (4 = 2x2, 9 = 3x3, 16 = 4x4)")
	pf.String("strategy", "linear", "duplicate check: linear or canonical")
	pf.Int("limit", 0, "stop after this many markers (0 = all)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.Int("min-black-regions", 0, "reject markers with fewer connected black regions (0 = off)")
	pf.Int("connectivity", 4, "region connectivity for --min-black-regions: 4 or 8")

	rootCmd.AddCommand(a.buildCmd(), a.printCmd(), a.renderCmd(), a.statsCmd(), a.configCmd())

	return rootCmd
}

// setup loads the config file, applies flag overrides, validates and
// creates the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	overrideInt(fs, "bits", &cfg.Bits)
	overrideString(fs, "strategy", &cfg.Strategy)
	overrideInt(fs, "limit", &cfg.Limit)
	overrideString(fs, "log-level", &cfg.LogLevel)
	overrideInt(fs, "min-black-regions", &cfg.Filter.MinBlackRegions)
	overrideInt(fs, "connectivity", &cfg.Filter.Connectivity)
	overrideInt(fs, "marker-size", &cfg.Render.MarkerSize)
	overrideInt(fs, "rows", &cfg.Render.Rows)
	overrideInt(fs, "cols", &cfg.Render.Cols)
	overrideInt(fs, "begin", &cfg.Render.Begin)
	overrideString(fs, "out", &cfg.Render.OutDir)
	overrideString(fs, "format", &cfg.Render.Format)

	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = newLogger(a.errOut, cfg.LogLevel)
	a.log.Debug("configuration loaded", "config", a.configPath, "bits", cfg.Bits, "strategy", cfg.Strategy)

	return nil
}

func overrideInt(fs *pflag.FlagSet, name string, dst *int) {
	if fs.Changed(name) {
		if v, err := fs.GetInt(name); err == nil {
			*dst = v
		}
	}
}

func overrideString(fs *pflag.FlagSet, name string, dst *string) {
	if fs.Changed(name) {
		if v, err := fs.GetString(name); err == nil {
			*dst = v
		}
	}
}

// buildOptions translates the config into dictionary options.
func (a *app) buildOptions() []dictionary.Option {
	strategy, _ := dictionary.ParseStrategy(a.cfg.Strategy)
	opts := []dictionary.Option{
		dictionary.WithStrategy(strategy),
		dictionary.WithLimit(a.cfg.Limit),
	}
	if n := a.cfg.Filter.MinBlackRegions; n > 0 {
		conn := regions.Conn4
		if a.cfg.Filter.Connectivity == 8 {
			conn = regions.Conn8
		}
		opts = append(opts, dictionary.WithFilter(regions.MinRegions(marker.Black, conn, n)))
	}

	return opts
}

// buildDictionary runs the builder with the effective configuration.
func (a *app) buildDictionary() (*dictionary.Dictionary, dictionary.Report, error) {
	start := time.Now()
	d, rep, err := dictionary.BuildWithReport(a.cfg.Bits, a.buildOptions()...)
	if err != nil {
		a.log.Error("dictionary build failed", "bits", a.cfg.Bits, "error", err)

		return nil, rep, err
	}
	a.log.Info("dictionary built",
		"bits", a.cfg.Bits,
		"dim", rep.Dim,
		"strategy", a.cfg.Strategy,
		"evaluated", rep.Evaluated,
		"accepted", rep.Accepted,
		"elapsed", time.Since(start),
	)

	return d, rep, nil
}

func (a *app) buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build a dictionary and report how the candidates were classified",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, rep, err := a.buildDictionary()
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "bits: %d  dim: %dx%d\n", a.cfg.Bits, rep.Dim, rep.Dim)
			fmt.Fprintf(a.out, "evaluated: %d\n", rep.Evaluated)
			fmt.Fprintf(a.out, "rejected (symmetric): %d\n", rep.RejectedSymmetry)
			fmt.Fprintf(a.out, "rejected (filter): %d\n", rep.RejectedFilter)
			fmt.Fprintf(a.out, "rejected (duplicate): %d\n", rep.RejectedDuplicate)
			fmt.Fprintf(a.out, "accepted: %d\n", rep.Accepted)

			return nil
		},
	}
}

func (a *app) printCmd() *cobra.Command {
	var plain bool
	var perRow int
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the dictionary to the console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if perRow <= 0 {
				return fmt.Errorf("--per-row must be > 0, got %d", perRow)
			}
			d, _, err := a.buildDictionary()
			if err != nil {
				return err
			}
			if plain {
				_, err = fmt.Fprint(a.out, d)

				return err
			}
			_, err = fmt.Fprintln(a.out, consoleView(d, perRow))

			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "unframed '* _' listing, one marker per block")
	cmd.Flags().IntVar(&perRow, "per-row", 8, "markers per console row")

	return cmd
}

func (a *app) renderCmd() *cobra.Command {
	var single int
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render dictionary pages (or one marker) as image files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, _, err := a.buildDictionary()
			if err != nil {
				return err
			}
			rc := a.cfg.Render
			if err = os.MkdirAll(rc.OutDir, 0o755); err != nil {
				return fmt.Errorf("failed to create the output directory %w", err)
			}
			dim := d.Dim()

			if single >= 0 {
				m, err := d.At(single)
				if err != nil {
					return err
				}
				img, err := render.Marker(m, rc.MarkerSize)
				if err != nil {
					return err
				}
				name := filepath.Join(rc.OutDir, fmt.Sprintf("marker_%dx%d_%03d.%s", dim, dim, single, rc.Format))
				if err = writeImage(name, img, rc.Format); err != nil {
					return err
				}
				a.log.Info("marker written", "file", name, "index", single)
				fmt.Fprintln(a.out, name)

				return nil
			}

			pages, err := render.Pages(render.Grids(d.Markers()),
				render.WithMarkerSize(rc.MarkerSize),
				render.WithGrid(rc.Rows, rc.Cols),
				render.WithBegin(rc.Begin),
			)
			if err != nil {
				return err
			}
			names := make([]string, len(pages))
			for i := range pages {
				names[i] = filepath.Join(rc.OutDir, fmt.Sprintf("dict_%dx%d_page_%03d.%s", dim, dim, i, rc.Format))
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, img := range pages {
				i, img := i, img
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					if err := writeImage(names[i], img, rc.Format); err != nil {
						return err
					}
					a.log.Debug("page written", "file", names[i], "width", img.Width, "height", img.Height)

					return nil
				})
			}
			if err = g.Wait(); err != nil {
				return err
			}
			a.log.Info("pages written", "count", len(pages), "dir", rc.OutDir)
			for _, n := range names {
				fmt.Fprintln(a.out, n)
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.String("out", ".", "output directory")
	f.String("format", "pgm", "image format: pgm or png")
	f.Int("marker-size", render.DefaultMarkerSize, "canvas side per marker in pixels")
	f.Int("rows", render.DefaultRows, "marker rows per page")
	f.Int("cols", render.DefaultCols, "marker columns per page")
	f.Int("begin", render.DefaultBegin, "index of the first marker drawn")
	f.IntVar(&single, "marker", -1, "render only the marker at this index")

	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Report separation and region statistics of the dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, _, err := a.buildDictionary()
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "markers: %d (%dx%d)\n", d.Count(), d.Dim(), d.Dim())
			if dist, ok := d.MinDistance(); ok {
				fmt.Fprintf(a.out, "min rotation distance: %d\n", dist)
			} else {
				fmt.Fprintln(a.out, "min rotation distance: n/a")
			}

			for _, conn := range []regions.Connectivity{regions.Conn4, regions.Conn8} {
				hist := make(map[int]int)
				for _, m := range d.Markers() {
					hist[regions.Count(m, marker.Black, conn)]++
				}
				keys := make([]int, 0, len(hist))
				for k := range hist {
					keys = append(keys, k)
				}
				sort.Ints(keys)
				fmt.Fprintf(a.out, "black regions (conn %s):\n", conn)
				for _, k := range keys {
					fmt.Fprintf(a.out, "  %d: %d\n", k, hist[k])
				}
			}

			return nil
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	var write string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if write != "" {
				if err := WriteConfig(write, a.cfg); err != nil {
					return err
				}
				a.log.Info("config written", "file", write)

				return nil
			}
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = a.out.Write(data)

			return err
		},
	}
	cmd.Flags().StringVar(&write, "write", "", "write the configuration to this file instead of stdout")

	return cmd
}
