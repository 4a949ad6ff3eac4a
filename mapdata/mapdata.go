// Package mapdata parses YAML map definitions into graphmap graphs.
package mapdata

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dvoryak/routetrace/graphmap"
)

// ErrNoNodes indicates the document defines no nodes.
var ErrNoNodes = errors.New("mapdata: map definition has no nodes")

// Definition mirrors the YAML document structure.
type Definition struct {
	Nodes []NodeDef `yaml:"nodes"`
	Edges []EdgeDef `yaml:"edges"`
}

// NodeDef is one node entry: identifier, optional display name, position.
type NodeDef struct {
	ID   string  `yaml:"id"`
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// EdgeDef is one connection entry. ID is optional; weight is always
// derived from positions, so the document never carries one.
type EdgeDef struct {
	ID   string `yaml:"id"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Parse decodes a YAML map definition and constructs the Graph.
// Decode errors and graphmap validation errors are returned wrapped;
// use errors.Is against the graphmap sentinels to classify the latter.
func Parse(data []byte) (*graphmap.Graph, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("mapdata: decode map definition: %w", err)
	}

	return Build(def)
}

// Load reads a map definition file and constructs the Graph.
func Load(path string) (*graphmap.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapdata: read %s: %w", path, err)
	}

	return Parse(data)
}

// Build constructs the Graph from an already-decoded Definition.
func Build(def Definition) (*graphmap.Graph, error) {
	if len(def.Nodes) == 0 {
		return nil, ErrNoNodes
	}

	nodes := make([]graphmap.Node, 0, len(def.Nodes))
	for _, n := range def.Nodes {
		nodes = append(nodes, graphmap.Node{
			ID:   n.ID,
			Name: n.Name,
			Pos:  graphmap.Point{X: n.X, Y: n.Y},
		})
	}

	specs := make([]graphmap.EdgeSpec, 0, len(def.Edges))
	for _, e := range def.Edges {
		specs = append(specs, graphmap.EdgeSpec{ID: e.ID, From: e.From, To: e.To})
	}

	g, err := graphmap.New(nodes, specs)
	if err != nil {
		return nil, fmt.Errorf("mapdata: invalid map definition: %w", err)
	}

	return g, nil
}
