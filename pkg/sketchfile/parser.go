package sketchfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/philipparndt/gosketch/pkg/sketch"
)

// Parse reads a sketch file and returns its document
func Parse(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse sketch file: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Save writes the document to a file
func (d *Document) Save(filename string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sketch: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (d *Document) validate() error {
	for i, e := range d.Entities {
		switch e.Type {
		case "point", "line", "circle", "arc":
		default:
			return fmt.Errorf("entity %d: unknown type %q", i, e.Type)
		}
	}
	return nil
}

// Store builds a sketch store from the document's entities. Entity
// IDs are assigned in file order, so the i-th entity gets ID i+1.
func (d *Document) Store() (*sketch.Store, error) {
	store := sketch.NewStore()
	for i, e := range d.Entities {
		var err error
		switch e.Type {
		case "point":
			store.AddPoint(point2(e.At))
		case "line":
			_, err = store.AddLine(point2(e.Start), point2(e.End))
		case "circle":
			_, err = store.AddCircle(point2(e.Center), e.Radius)
		case "arc":
			_, err = store.AddArc(point2(e.Center), e.Radius, e.StartAngle, e.EndAngle)
		}
		if err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
	}
	return store, nil
}

// FromStore captures a store's entities into a document on the given
// plane definition.
func FromStore(name string, store *sketch.Store) *Document {
	doc := NewDocument(name)
	for _, entity := range store.Entities() {
		switch e := entity.(type) {
		case sketch.Point:
			doc.Entities = append(doc.Entities, EntityDef{Type: "point", At: coords2(e.Position)})
		case sketch.Line:
			doc.Entities = append(doc.Entities, EntityDef{Type: "line", Start: coords2(e.Start), End: coords2(e.End)})
		case sketch.Circle:
			doc.Entities = append(doc.Entities, EntityDef{Type: "circle", Center: coords2(e.Center), Radius: e.Radius})
		case sketch.Arc:
			doc.Entities = append(doc.Entities, EntityDef{
				Type:       "arc",
				Center:     coords2(e.Center),
				Radius:     e.Radius,
				StartAngle: e.StartAngle,
				EndAngle:   e.EndAngle,
			})
		}
	}
	return doc
}
