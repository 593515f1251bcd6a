// Package graphfile reads and writes weighted digraphs as YAML documents:
//
//	name: roads
//	undirected: false
//	nodes: [A, B, C]        # optional; edge endpoints are added implicitly
//	edges:
//	  - {from: A, to: B, weight: 1.5}
//	  - {from: B, to: C}    # weight defaults to 1
//
// Decoding validates the whole document and reports every bad edge at once.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/core"
)

// ErrInvalidGraph tags every validation failure of a graph document.
var ErrInvalidGraph = errors.New("graphfile: invalid graph")

// File is the YAML representation of a graph.
type File struct {
	Name       string   `yaml:"name,omitempty"`
	Undirected bool     `yaml:"undirected,omitempty"`
	Nodes      []string `yaml:"nodes,omitempty"`
	Edges      []Edge   `yaml:"edges"`
}

// Edge is one weighted edge. A nil Weight means 1.
type Edge struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight,omitempty"`
}

func (e Edge) weight() float64 {
	if e.Weight == nil {
		return 1
	}

	return *e.Weight
}

// Decode parses and validates a document.
func Decode(r io.Reader) (*File, error) {
	f := new(File)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Load reads and validates the document at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if f.Name == "" {
		f.Name = path
	}

	return f, nil
}

// Validate reports empty node ids, non-finite weights and repeated edges.
func (f *File) Validate() error {
	var err error
	for i, n := range f.Nodes {
		if n == "" {
			err = multierr.Append(err, fmt.Errorf("%w: nodes[%d] is empty", ErrInvalidGraph, i))
		}
	}

	type pair struct{ u, v string }
	seen := make(map[pair]int, len(f.Edges))
	for i, e := range f.Edges {
		if e.From == "" || e.To == "" {
			err = multierr.Append(err, fmt.Errorf("%w: edges[%d] has an empty endpoint", ErrInvalidGraph, i))
			continue
		}
		if w := e.weight(); math.IsNaN(w) || math.IsInf(w, 0) {
			err = multierr.Append(err, fmt.Errorf("%w: edges[%d] %s→%s weight %v", ErrInvalidGraph, i, e.From, e.To, w))
		}
		keys := []pair{{e.From, e.To}}
		if f.Undirected && e.From != e.To {
			keys = append(keys, pair{e.To, e.From})
		}
		for _, k := range keys {
			if j, dup := seen[k]; dup {
				err = multierr.Append(err, fmt.Errorf("%w: edges[%d] repeats %s→%s from edges[%d]", ErrInvalidGraph, i, k.u, k.v, j))
				continue
			}
			seen[k] = i
		}
	}

	return err
}

// Graph builds the digraph. Undirected documents get both arcs per edge.
func (f *File) Graph() (*core.Digraph[string], error) {
	g := core.NewDigraph[string]()
	for _, n := range f.Nodes {
		g.AddVertex(n)
	}
	for i, e := range f.Edges {
		var err error
		if f.Undirected && e.From != e.To {
			err = g.AddUndirectedEdge(e.From, e.To, e.weight())
		} else {
			err = g.AddEdge(e.From, e.To, e.weight())
		}
		if err != nil {
			return nil, fmt.Errorf("graphfile: edges[%d]: %w", i, err)
		}
	}

	return g, nil
}

// FromGraph converts g into a directed document. Every node is listed so
// isolated vertices survive a round trip.
func FromGraph(name string, g core.Graph[string]) *File {
	f := &File{Name: name, Nodes: g.Nodes()}
	for _, e := range core.Edges(g) {
		w := e.Weight
		f.Edges = append(f.Edges, Edge{From: e.From, To: e.To, Weight: &w})
	}

	return f
}

// Encode writes f as YAML.
func (f *File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return enc.Close()
}
