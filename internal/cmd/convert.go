package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	colorlab "github.com/MeKo-Tech/colorlab"
)

var convertCmd = &cobra.Command{
	Use:   "convert COLOR",
	Short: "Convert a color between color spaces",
	Long: `Convert a color between the supported color spaces.

COLOR is either a hex string like "#ff8040" (sRGB, implies --from rgb)
or a comma-separated component triple interpreted in the --from space.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("from", "rgb", "Source color space (rgb, lrgb, xyz, yxy, lab, lms, munsell, pccs, yiq)")
	convertCmd.Flags().String("to", "lab", "Target color space")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"convert.from", "from"},
		{"convert.to", "to"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, convertCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	from := viper.GetString("convert.from")
	to := viper.GetString("convert.to")

	if logger == nil {
		initLogging()
	}

	value, err := parseColor(args[0])
	if err != nil {
		return err
	}

	result, saturated, err := colorlab.ConvertNamed(value, from, to)
	if err != nil {
		return err
	}

	logger.Debug("Converted color", "from", from, "to", to, "saturated", saturated)

	fmt.Printf("%s: %s\n", to, formatTriple(result))
	if saturated {
		fmt.Println("note: result was clamped to the target gamut or table range")
	}
	return nil
}
