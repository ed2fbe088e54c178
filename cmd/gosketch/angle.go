package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
	"github.com/philipparndt/gosketch/pkg/sketchfile"
	"github.com/spf13/cobra"
)

var (
	angleLine1 int
	angleLine2 int
)

var angleCmd = &cobra.Command{
	Use:   "angle [file]",
	Short: "Measure the angle between two lines",
	Long: `Measure the angle between two lines of the sketch.

The reported angle is independent of how either line's endpoints are
ordered. For non-intersecting lines the intersection of their
extensions is used as the vertex; parallel lines report 0 or 180
degrees.`,
	Args: cobra.ExactArgs(1),
	Run:  runAngle,
}

func init() {
	rootCmd.AddCommand(angleCmd)

	angleCmd.Flags().IntVar(&angleLine1, "line1", 0, "entity ID of the first line")
	angleCmd.Flags().IntVar(&angleLine2, "line2", 0, "entity ID of the second line")

	_ = angleCmd.MarkFlagRequired("line1")
	_ = angleCmd.MarkFlagRequired("line2")
}

func lineByID(store *sketch.Store, id int) (sketch.Line, error) {
	entity, ok := store.Get(sketch.ID(id))
	if !ok {
		return sketch.Line{}, fmt.Errorf("entity %d not found", id)
	}
	line, ok := entity.(sketch.Line)
	if !ok {
		return sketch.Line{}, fmt.Errorf("entity %d is a %s, not a line", id, entity.EntityKind())
	}
	return line, nil
}

func runAngle(cmd *cobra.Command, args []string) {
	doc, err := sketchfile.Parse(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing sketch file: %v\n", err)
		os.Exit(1)
	}
	store, err := doc.Store()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building sketch: %v\n", err)
		os.Exit(1)
	}

	l1, err := lineByID(store, angleLine1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	l2, err := lineByID(store, angleLine2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := geometry.AngleBetween(l1.Segment(), l2.Segment())

	fmt.Println("Angle Measurement")
	fmt.Println("=================")
	fmt.Printf("Lines: %d and %d\n", angleLine1, angleLine2)
	if result.Parallel {
		fmt.Printf("Angle: %.3f degrees (parallel)\n", result.Degrees)
		return
	}
	fmt.Printf("Angle: %.3f degrees\n", result.Degrees)
	fmt.Printf("Supplement: %.3f degrees\n", 180-result.Degrees)
	fmt.Printf("Vertex: (%.3f, %.3f)\n", result.Vertex.X, result.Vertex.Y)
}
