// Package scenefile loads declarative YAML scene documents into display
// trees. Documents are construction input for tooling; the package does not
// serialize live trees back out.
package scenefile

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-stage/stage/pkg/display"
	"github.com/go-stage/stage/pkg/errors"
	"github.com/go-stage/stage/pkg/graphics"
	"github.com/go-stage/stage/pkg/layers"
)

// FormatVersion is the newest document version this package reads.
const FormatVersion = "v1"

// Document mirrors the YAML structure of a scene file.
type Document struct {
	Version string    `yaml:"version"`
	Layers  []string  `yaml:"layers,omitempty"`
	Root    *NodeSpec `yaml:"root"`
}

// NodeSpec describes one node in a scene document.
type NodeSpec struct {
	ID       string      `yaml:"id,omitempty"`
	Label    string      `yaml:"label,omitempty"`
	Z        int         `yaml:"z,omitempty"`
	Tint     string      `yaml:"tint,omitempty"`
	Visible  *bool       `yaml:"visible,omitempty"`
	Alpha    *float64    `yaml:"alpha,omitempty"`
	Sortable bool        `yaml:"sortable,omitempty"`
	Layer    string      `yaml:"layer,omitempty"`
	Children []*NodeSpec `yaml:"children,omitempty"`
}

// Scene is a constructed scene tree plus its layer indexes.
type Scene struct {
	Version string
	Root    *display.Node
	// Layers holds the document's layer indexes by name.
	Layers map[string]*layers.Layer
	// Nodes indexes every constructed node by id. Nodes without an id in
	// the document receive a generated one.
	Nodes map[string]*display.Node
}

// LoadFile reads and constructs the scene document at path.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer f.Close()
	scene, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scene, nil
}

// Load decodes a scene document from r and constructs its tree. The
// resulting tree is built through the ordinary insertion path, so it
// satisfies the tree invariants by construction.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Parse("scenefile.Load", "failed to parse document: %v", err)
	}

	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}
	if doc.Root == nil {
		return nil, errors.Parse("scenefile.Load", "document has no root node")
	}

	scene := &Scene{
		Version: doc.Version,
		Layers:  make(map[string]*layers.Layer, len(doc.Layers)),
		Nodes:   make(map[string]*display.Node),
	}
	for _, name := range doc.Layers {
		if name == "" {
			return nil, errors.Parse("scenefile.Load", "layer names must not be empty")
		}
		if _, ok := scene.Layers[name]; ok {
			return nil, errors.Parse("scenefile.Load", "duplicate layer %q", name)
		}
		scene.Layers[name] = layers.New(name)
	}

	root, err := scene.build(doc.Root, nil)
	if err != nil {
		return nil, err
	}
	scene.Root = root
	return scene, nil
}

func checkVersion(version string) error {
	if version == "" {
		return errors.Parse("scenefile.Load", "document has no version")
	}
	if !semver.IsValid(version) {
		return errors.Parse("scenefile.Load", "invalid version %q", version)
	}
	if semver.Compare(semver.Major(version), FormatVersion) > 0 {
		return errors.Parse("scenefile.Load", "unsupported version %s (newest supported is %s)", version, FormatVersion)
	}
	return nil
}

// build constructs spec and its subtree, attaching to parent when given.
func (s *Scene) build(spec *NodeSpec, parent *display.Node) (*display.Node, error) {
	id := spec.ID
	if id == "" {
		id = uuid.NewString()
	}
	if _, ok := s.Nodes[id]; ok {
		return nil, errors.Parse("scenefile.Load", "duplicate node id %q", id)
	}

	node := display.New(spec.Label)
	node.SetZIndex(spec.Z)
	node.SetSortableChildren(spec.Sortable)
	if spec.Visible != nil {
		node.SetVisible(*spec.Visible)
	}
	if spec.Alpha != nil {
		node.SetAlpha(*spec.Alpha)
	}
	if spec.Tint != "" {
		tint, err := graphics.ParseColor(spec.Tint)
		if err != nil {
			return nil, errors.Parse("scenefile.Load", "node %q: %v", id, err)
		}
		node.SetTint(tint)
	}

	s.Nodes[id] = node
	if parent != nil {
		parent.AddChild(node)
	}

	// Explicit layer assignment wins over the layer inherited from the
	// parent's layer group on insertion.
	if spec.Layer != "" {
		layer, ok := s.Layers[spec.Layer]
		if !ok {
			return nil, errors.Parse("scenefile.Load", "node %q: unknown layer %q", id, spec.Layer)
		}
		layer.AddChild(node)
	}

	for _, childSpec := range spec.Children {
		if childSpec == nil {
			continue
		}
		if _, err := s.build(childSpec, node); err != nil {
			return nil, err
		}
	}
	return node, nil
}
