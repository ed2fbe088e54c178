package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/gosketch/pkg/dimension"
	"github.com/philipparndt/gosketch/pkg/export"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
	"github.com/philipparndt/gosketch/pkg/sketchfile"
	"github.com/spf13/cobra"
)

var (
	renderOutput string
	renderWidth  int
	renderHeight int
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a sketch and its dimensions to a PNG image",
	Args:  cobra.ExactArgs(1),
	Run:   runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output PNG file (default: input name with .png)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 1024, "image width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 768, "image height in pixels")
}

// dimensionKindFromName maps serialized kind names back to kinds
func dimensionKindFromName(name string) (dimension.Kind, bool) {
	for _, k := range []dimension.Kind{
		dimension.Distance, dimension.HorizontalDistance, dimension.VerticalDistance,
		dimension.Angle, dimension.Radius, dimension.Diameter, dimension.DistancePointLine,
	} {
		if k.String() == name {
			return k, true
		}
	}
	return dimension.Distance, false
}

func runRender(cmd *cobra.Command, args []string) {
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

	var dims []dimension.Proposal
	for _, d := range doc.Dimensions {
		kind, ok := dimensionKindFromName(d.Kind)
		if !ok {
			fmt.Fprintf(os.Stderr, "Warning: skipping unknown dimension kind %q\n", d.Kind)
			continue
		}
		proposal := dimension.Proposal{
			Kind:      kind,
			Value:     d.Value,
			Placement: geometry.NewPoint2(d.Placement[0], d.Placement[1]),
			Anchor:    geometry.NewPoint2(d.Placement[0], d.Placement[1]),
		}
		for i, id := range d.Subjects {
			if i >= 2 {
				break
			}
			proposal.Subjects[i] = sketch.ID(id)
		}
		dims = append(dims, proposal)
	}

	output := renderOutput
	if output == "" {
		output = strings.TrimSuffix(filename, ".json") + ".png"
	}

	opts := export.Options{Width: renderWidth, Height: renderHeight}
	if err := export.RenderPNG(store, dims, output, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering sketch: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered %d entities and %d dimensions to %s\n", store.Len(), len(dims), output)
}
