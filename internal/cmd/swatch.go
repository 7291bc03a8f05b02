package cmd

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/colorlab/internal/palette"
	"github.com/MeKo-Tech/colorlab/internal/swatch"
	"github.com/MeKo-Tech/colorlab/internal/worker"
)

var swatchCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Render swatch sheets in parallel",
	Long: `Render PNG swatch sheets for palettes and PCCS tone charts.

--palettes renders one sheet per named palette; --hues renders one PCCS
tone chart per hue. Sheets are rendered in parallel.`,
	RunE: runSwatch,
}

func init() {
	rootCmd.AddCommand(swatchCmd)

	swatchCmd.Flags().String("palettes", "", "Comma-separated palette names to render")
	swatchCmd.Flags().String("hues", "", "Comma-separated PCCS hues for tone charts (e.g. \"2,8,14,20\")")
	swatchCmd.Flags().String("output-dir", "./sheets", "Output directory for rendered sheets")
	swatchCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	swatchCmd.Flags().Bool("progress", true, "Show progress bar")
	swatchCmd.Flags().Int("cell-size", 64, "Swatch cell edge in pixels")
	swatchCmd.Flags().Int("columns", 8, "Cells per row")
	swatchCmd.Flags().Int64("seed", 1337, "Deterministic seed for the paper grain")
	swatchCmd.Flags().Float64("grain", 0.15, "Paper grain strength (0 disables)")
	swatchCmd.Flags().Bool("hidpi", false, "Render sheets at 2x resolution")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"swatch.palettes", "palettes"},
		{"swatch.hues", "hues"},
		{"swatch.output_dir", "output-dir"},
		{"swatch.workers", "workers"},
		{"swatch.progress", "progress"},
		{"swatch.cell_size", "cell-size"},
		{"swatch.columns", "columns"},
		{"swatch.seed", "seed"},
		{"swatch.grain", "grain"},
		{"swatch.hidpi", "hidpi"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, swatchCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

// sheetRenderer renders one pool task to a PNG file.
type sheetRenderer struct {
	store *palette.Store
	opts  swatch.Options
}

func (r *sheetRenderer) Render(ctx context.Context, task worker.Task) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var (
		img image.Image
		err error
	)
	if task.Palette != "" {
		pal, gerr := r.store.Get(task.Palette)
		if gerr != nil {
			return "", gerr
		}
		img, err = swatch.Sheet(pal.Colors, r.opts)
	} else {
		img, err = swatch.ToneSheet(task.Hue, r.opts)
	}
	if err != nil {
		return "", err
	}

	f, err := os.Create(task.OutPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %q: %w", task.OutPath, err)
	}
	defer f.Close()

	if err := swatch.EncodePNG(f, img); err != nil {
		return "", err
	}
	return task.OutPath, nil
}

func runSwatch(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	palettes := viper.GetString("swatch.palettes")
	hues := viper.GetString("swatch.hues")
	outputDir := viper.GetString("swatch.output_dir")
	workers := viper.GetInt("swatch.workers")
	showProgress := viper.GetBool("swatch.progress")

	if palettes == "" && hues == "" {
		return fmt.Errorf("nothing to render: pass --palettes and/or --hues")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	opts := swatch.Options{
		CellSize:      viper.GetInt("swatch.cell_size"),
		Columns:       viper.GetInt("swatch.columns"),
		Margin:        8,
		Seed:          viper.GetInt64("swatch.seed"),
		GrainStrength: viper.GetFloat64("swatch.grain"),
		Scale:         1,
	}
	if viper.GetBool("swatch.hidpi") {
		opts.Scale = 2
	}

	var tasks []worker.Task
	if palettes != "" {
		for _, name := range strings.Split(palettes, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			tasks = append(tasks, worker.Task{
				Palette: name,
				OutPath: filepath.Join(outputDir, fmt.Sprintf("palette_%s.png", name)),
			})
		}
	}
	if hues != "" {
		for _, part := range strings.Split(hues, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			hue, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return fmt.Errorf("invalid hue %q: %w", part, err)
			}
			tasks = append(tasks, worker.Task{
				Hue:     hue,
				OutPath: filepath.Join(outputDir, fmt.Sprintf("tones_h%s.png", part)),
			})
		}
	}

	store, err := openPaletteStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	progress := worker.NewProgress(len(tasks), showProgress)
	pool := worker.New(worker.Config{
		Workers:    workers,
		Renderer:   &sheetRenderer{store: store, opts: opts},
		OnProgress: progress.Callback(),
	})

	logger.Info("Rendering sheets", "tasks", len(tasks), "workers", workers, "output_dir", outputDir)
	results := pool.Run(ctx, tasks)

	for _, r := range results {
		if r.Err != nil {
			logger.Error("Failed to render sheet", "sheet", r.Task.Label(), "error", r.Err)
		}
	}

	logger.Info(progress.Summary())
	if failed := progress.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d sheets failed", len(failed), len(tasks))
	}
	return nil
}
