package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/colorlab/internal/palette"
	"github.com/MeKo-Tech/colorlab/internal/swatch"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Manage named color palettes",
}

var paletteAddCmd = &cobra.Command{
	Use:   "add NAME COLOR...",
	Short: "Add colors to a palette, creating it if necessary",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runPaletteAdd,
}

var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List palettes and their colors",
	Args:  cobra.NoArgs,
	RunE:  runPaletteList,
}

var paletteRmCmd = &cobra.Command{
	Use:   "rm NAME",
	Short: "Remove a palette",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaletteRm,
}

var paletteNearestCmd = &cobra.Command{
	Use:   "nearest NAME COLOR",
	Short: "Find the palette color closest to the given color",
	Args:  cobra.ExactArgs(2),
	RunE:  runPaletteNearest,
}

var paletteExportCmd = &cobra.Command{
	Use:   "export NAME",
	Short: "Render a palette to a PNG swatch sheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaletteExport,
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.AddCommand(paletteAddCmd, paletteListCmd, paletteRmCmd, paletteNearestCmd, paletteExportCmd)

	paletteAddCmd.Flags().String("label", "", "Label applied to the added colors")

	paletteExportCmd.Flags().StringP("output", "o", "", "Output PNG file path (required)")
	paletteExportCmd.Flags().Int("cell-size", 64, "Swatch cell edge in pixels")
	paletteExportCmd.Flags().Int("columns", 8, "Cells per row")
	paletteExportCmd.Flags().Int64("seed", 1337, "Deterministic seed for the paper grain")
	paletteExportCmd.Flags().Float64("grain", 0.15, "Paper grain strength (0 disables)")
	paletteExportCmd.Flags().Bool("hidpi", false, "Render the sheet at 2x resolution")

	bindFlags := []struct {
		key  string
		flag string
		cmd  *cobra.Command
	}{
		{"palette.label", "label", paletteAddCmd},
		{"palette.output", "output", paletteExportCmd},
		{"palette.cell_size", "cell-size", paletteExportCmd},
		{"palette.columns", "columns", paletteExportCmd},
		{"palette.seed", "seed", paletteExportCmd},
		{"palette.grain", "grain", paletteExportCmd},
		{"palette.hidpi", "hidpi", paletteExportCmd},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, bf.cmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func openPaletteStore() (*palette.Store, error) {
	path := viper.GetString("palette_db")
	store, err := palette.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette database %q: %w", path, err)
	}
	return store, nil
}

func runPaletteAdd(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	name := args[0]
	label := viper.GetString("palette.label")

	store, err := openPaletteStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if _, err := store.Get(name); errors.Is(err, palette.ErrNotFound) {
		if err := store.Create(name, ""); err != nil {
			return err
		}
		logger.Info("Created palette", "name", name)
	} else if err != nil {
		return err
	}

	for _, arg := range args[1:] {
		rgb, err := parseColor(arg)
		if err != nil {
			return err
		}
		if err := store.Add(name, palette.Color{Label: label, RGB: rgb}); err != nil {
			return err
		}
	}
	if err := store.Flush(); err != nil {
		return err
	}

	logger.Info("Added colors", "palette", name, "count", len(args)-1)
	return nil
}

func runPaletteList(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	store, err := openPaletteStore()
	if err != nil {
		return err
	}
	defer store.Close()

	names, err := store.List()
	if err != nil {
		return err
	}

	for _, name := range names {
		pal, err := store.Get(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%d colors)\n", pal.Name, len(pal.Colors))
		for _, c := range pal.Colors {
			if c.Label != "" {
				fmt.Printf("  %-12s %s\n", c.Label, formatTriple(c.RGB))
			} else {
				fmt.Printf("  %s\n", formatTriple(c.RGB))
			}
		}
	}
	return nil
}

func runPaletteRm(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	store, err := openPaletteStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Remove(args[0]); err != nil {
		return err
	}
	logger.Info("Removed palette", "name", args[0])
	return nil
}

func runPaletteNearest(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	rgb, err := parseColor(args[1])
	if err != nil {
		return err
	}

	store, err := openPaletteStore()
	if err != nil {
		return err
	}
	defer store.Close()

	c, d, err := store.Nearest(args[0], rgb)
	if err != nil {
		return err
	}

	if c.Label != "" {
		fmt.Printf("%s: %s (delta %.2f)\n", c.Label, formatTriple(c.RGB), d)
	} else {
		fmt.Printf("%s (delta %.2f)\n", formatTriple(c.RGB), d)
	}
	return nil
}

func runPaletteExport(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	output := viper.GetString("palette.output")
	if output == "" {
		return fmt.Errorf("--output is required")
	}

	store, err := openPaletteStore()
	if err != nil {
		return err
	}
	defer store.Close()

	pal, err := store.Get(args[0])
	if err != nil {
		return err
	}

	opts := swatch.Options{
		CellSize:      viper.GetInt("palette.cell_size"),
		Columns:       viper.GetInt("palette.columns"),
		Margin:        8,
		Seed:          viper.GetInt64("palette.seed"),
		GrainStrength: viper.GetFloat64("palette.grain"),
		Scale:         1,
	}
	if viper.GetBool("palette.hidpi") {
		opts.Scale = 2
	}

	img, err := swatch.Sheet(pal.Colors, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", output, err)
	}
	defer f.Close()

	if err := swatch.EncodePNG(f, img); err != nil {
		return err
	}

	logger.Info("Exported palette sheet", "palette", args[0], "output", output, "colors", len(pal.Colors))
	return nil
}
