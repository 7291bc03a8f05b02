package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	colorlab "github.com/MeKo-Tech/colorlab"
	"github.com/MeKo-Tech/colorlab/eval"
	"github.com/MeKo-Tech/colorlab/pccs"
)

var categoryCmd = &cobra.Command{
	Use:   "category COLOR",
	Short: "Name a color with one of the eleven basic color terms",
	Long: `Name a color with one of the eleven basic color terms (white, black,
gray, red, yellow, green, blue, brown, purple, pink, orange), and report
its PCCS tone and conspicuity.`,
	Args: cobra.ExactArgs(1),
	RunE: runCategory,
}

func init() {
	rootCmd.AddCommand(categoryCmd)

	categoryCmd.Flags().String("space", "rgb", "Color space of the argument")

	if err := viper.BindPFlag("category.space", categoryCmd.Flags().Lookup("space")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func runCategory(cmd *cobra.Command, args []string) error {
	spaceName := viper.GetString("category.space")

	if logger == nil {
		initLogging()
	}

	value, err := parseColor(args[0])
	if err != nil {
		return err
	}

	space, err := colorlab.ParseSpace(spaceName)
	if err != nil {
		return err
	}

	name, err := colorlab.CategoryOf(value, space)
	if err != nil {
		return err
	}

	hls, _, err := colorlab.Convert(value, space, colorlab.PCCS)
	if err != nil {
		return err
	}
	lab, _, err := colorlab.Convert(value, space, colorlab.Lab)
	if err != nil {
		return err
	}

	fmt.Printf("category:    %s\n", name)
	fmt.Printf("tone:        %s\n", pccs.ToneOf(hls))
	fmt.Printf("conspicuity: %.2f\n", eval.Conspicuity(lab))
	return nil
}
