package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gosketch/pkg/analysis"
	"github.com/philipparndt/gosketch/pkg/sketchfile"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a sketch file",
	Long:  "Show entity counts, bounds, curve lengths and placed dimensions of a sketch.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	doc, err := sketchfile.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing sketch file: %v\n", err)
		os.Exit(1)
	}
	store, err := doc.Store()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building sketch: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzeSketch(store)

	fmt.Println("Sketch File Information")
	fmt.Println("=======================")
	if doc.Name != "" {
		fmt.Printf("Name: %s\n", doc.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Entities:")
	fmt.Printf("  Points: %d\n", result.PointCount)
	fmt.Printf("  Lines: %d\n", result.LineCount)
	fmt.Printf("  Circles: %d\n", result.CircleCount)
	fmt.Printf("  Arcs: %d\n", result.ArcCount)
	fmt.Printf("  Total: %d\n\n", result.EntityCount)

	fmt.Println("Bounds:")
	fmt.Printf("  Min: %s\n", analysis.FormatPoint(result.Bounds.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatPoint(result.Bounds.Max))
	size := result.Bounds.Size()
	fmt.Printf("  Size: %.3f x %.3f\n\n", size.X, size.Y)

	fmt.Println("Curve Lengths:")
	fmt.Printf("  Total: %s\n", analysis.FormatMeasurement(result.TotalLength, ""))
	fmt.Printf("  Minimum: %s\n", analysis.FormatMeasurement(result.MinCurveLength, ""))
	fmt.Printf("  Maximum: %s\n", analysis.FormatMeasurement(result.MaxCurveLength, ""))

	if len(doc.Dimensions) > 0 {
		fmt.Println("\nDimensions:")
		for _, d := range doc.Dimensions {
			fmt.Printf("  %s: %.3f (entities %v)\n", d.Kind, d.Value, d.Subjects)
		}
	}
}
