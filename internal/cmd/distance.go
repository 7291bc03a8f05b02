package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	colorlab "github.com/MeKo-Tech/colorlab"
	"github.com/MeKo-Tech/colorlab/eval"
)

var distanceCmd = &cobra.Command{
	Use:   "distance COLOR_A COLOR_B",
	Short: "Compute the perceptual difference between two colors",
	Long: `Compute the perceptual color difference between two colors given in a
common color space. CIEDE2000 is used by default; --method cie76 selects
the plain Euclidean CIELAB difference.`,
	Args: cobra.ExactArgs(2),
	RunE: runDistance,
}

func init() {
	rootCmd.AddCommand(distanceCmd)

	distanceCmd.Flags().String("space", "rgb", "Color space of the arguments")
	distanceCmd.Flags().String("method", "ciede2000", "Difference formula (ciede2000, cie76)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"distance.space", "space"},
		{"distance.method", "method"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, distanceCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runDistance(cmd *cobra.Command, args []string) error {
	spaceName := viper.GetString("distance.space")
	method := viper.GetString("distance.method")

	if logger == nil {
		initLogging()
	}

	a, err := parseColor(args[0])
	if err != nil {
		return fmt.Errorf("first color: %w", err)
	}
	b, err := parseColor(args[1])
	if err != nil {
		return fmt.Errorf("second color: %w", err)
	}

	space, err := colorlab.ParseSpace(spaceName)
	if err != nil {
		return err
	}

	labA, _, err := colorlab.Convert(a, space, colorlab.Lab)
	if err != nil {
		return err
	}
	labB, _, err := colorlab.Convert(b, space, colorlab.Lab)
	if err != nil {
		return err
	}

	var d float64
	switch method {
	case "ciede2000":
		d = eval.DistanceCIEDE2000(labA, labB)
	case "cie76":
		d = eval.DistanceCIE76(labA, labB)
	default:
		return fmt.Errorf("unknown method %q: must be 'ciede2000' or 'cie76'", method)
	}

	fmt.Printf("%.4f\n", d)
	return nil
}
