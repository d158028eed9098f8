package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dbsmedya/partlist/internal/body"
	"github.com/dbsmedya/partlist/internal/logger"
)

// Assembly document layout. JSON exports parse too, since YAML is a superset.
//
//	design: Bookshelf
//	units: mm
//	root:
//	  name: Bookshelf
//	  bodies:
//	    - name: Side
//	      bounding_box: {min: [0, 0, 0], max: [1.8, 30, 200]}
//	occurrences:
//	  - name: Shelf:1
//	    component: Shelf
//	components:
//	  - name: Shelf
//	    bodies: [...]
type assemblyDoc struct {
	Design      string          `yaml:"design"`
	Units       string          `yaml:"units"`
	Root        componentDoc    `yaml:"root"`
	Occurrences []occurrenceDoc `yaml:"occurrences"`
	Components  []componentDoc  `yaml:"components"`
}

type componentDoc struct {
	Name   string    `yaml:"name"`
	Bodies []bodyDoc `yaml:"bodies"`
}

type occurrenceDoc struct {
	Name      string `yaml:"name"`
	Component string `yaml:"component"`
}

type bodyDoc struct {
	Name        string  `yaml:"name"`
	Visible     *bool   `yaml:"visible"`
	BoundingBox *boxDoc `yaml:"bounding_box"`
}

type boxDoc struct {
	Min []float64 `yaml:"min"`
	Max []float64 `yaml:"max"`
}

// FileSource reads an exported assembly document.
type FileSource struct {
	path   string
	logger *logger.Logger
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string, log *logger.Logger) *FileSource {
	if log == nil {
		log = logger.NewDefault()
	}
	return &FileSource{
		path:   path,
		logger: log.WithSource("file", path),
	}
}

// Enumerate reads the document and lists the root component's bodies, then
// the bodies of each first-level occurrence's component, in document order.
// A component placed by several occurrences is listed once per occurrence.
func (s *FileSource) Enumerate(ctx context.Context) (*body.Design, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open assembly: %w", err)
	}
	defer f.Close()

	design, err := ParseAssembly(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read assembly %s: %w", s.path, err)
	}

	visible, hidden := body.CountVisible(design.Records)
	s.logger.Debugw("Assembly enumerated",
		"design", design.Name,
		"visible_bodies", visible,
		"hidden_bodies", hidden,
	)
	return design, nil
}

// ParseAssembly decodes an assembly document. Unknown fields are rejected.
func ParseAssembly(r io.Reader) (*body.Design, error) {
	var doc assemblyDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("assembly document is empty")
		}
		return nil, err
	}

	components := make(map[string]*componentDoc, len(doc.Components))
	for i := range doc.Components {
		c := &doc.Components[i]
		if c.Name == "" {
			return nil, fmt.Errorf("components[%d]: name is required", i)
		}
		if _, dup := components[c.Name]; dup {
			return nil, fmt.Errorf("components[%d]: duplicate component %q", i, c.Name)
		}
		components[c.Name] = c
	}

	rootName := doc.Root.Name
	if rootName == "" {
		rootName = doc.Design
	}

	design := &body.Design{
		Name:         doc.Design,
		DefaultUnits: doc.Units,
	}

	records, err := componentRecords(rootName, doc.Root.Bodies)
	if err != nil {
		return nil, err
	}
	design.Records = append(design.Records, records...)

	for i, occ := range doc.Occurrences {
		c, ok := components[occ.Component]
		if !ok {
			return nil, fmt.Errorf("occurrences[%d]: unknown component %q", i, occ.Component)
		}
		records, err := componentRecords(c.Name, c.Bodies)
		if err != nil {
			return nil, err
		}
		design.Records = append(design.Records, records...)
	}

	return design, nil
}

func componentRecords(component string, bodies []bodyDoc) ([]body.Record, error) {
	records := make([]body.Record, 0, len(bodies))
	for i, b := range bodies {
		rec := body.Record{
			ComponentName: component,
			BodyName:      b.Name,
			Visible:       b.Visible == nil || *b.Visible,
		}
		if b.BoundingBox != nil {
			box, err := b.BoundingBox.toBox()
			if err != nil {
				return nil, fmt.Errorf("component %q body %d (%s): %w", component, i, b.Name, err)
			}
			rec.Box = box
		}
		records = append(records, rec)
	}
	return records, nil
}

func (b *boxDoc) toBox() (*body.BoundingBox, error) {
	if len(b.Min) != 3 || len(b.Max) != 3 {
		return nil, fmt.Errorf("bounding_box corners need 3 coordinates, got min=%d max=%d", len(b.Min), len(b.Max))
	}
	return &body.BoundingBox{
		Min: body.Point{X: b.Min[0], Y: b.Min[1], Z: b.Min[2]},
		Max: body.Point{X: b.Max[0], Y: b.Max[1], Z: b.Max[2]},
	}, nil
}
