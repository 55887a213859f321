package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metagraph/core"
)

// edgeDoc is one edge entry of a metagraph document.
type edgeDoc struct {
	In         []string `yaml:"in"`
	Out        []string `yaml:"out"`
	Attributes []string `yaml:"attributes,omitempty"`
	Label      string   `yaml:"label,omitempty"`
}

// document is the YAML shape of a metagraph description. A plain metagraph
// carries generating_set; a conditional one carries variables and
// propositions instead.
type document struct {
	GeneratingSet []string  `yaml:"generating_set,omitempty"`
	Variables     []string  `yaml:"variables,omitempty"`
	Propositions  []string  `yaml:"propositions,omitempty"`
	Edges         []edgeDoc `yaml:"edges"`
}

// loadDocument reads the document named by the --doc flag (or the doc config
// key).
func loadDocument() (*document, error) {
	path := viper.GetString("doc")
	if path == "" {
		return nil, fmt.Errorf("no document given: set --doc or the doc config key")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing document %s: %w", path, err)
	}
	return &doc, nil
}

func (d *document) isConditional() bool {
	return len(d.Variables) > 0 || len(d.Propositions) > 0
}

func (d *document) edges() ([]*core.Edge, error) {
	edges := make([]*core.Edge, 0, len(d.Edges))
	for i, ed := range d.Edges {
		var opts []core.EdgeOption
		if ed.Label != "" {
			opts = append(opts, core.WithLabel(ed.Label))
		}
		if len(ed.Attributes) > 0 {
			opts = append(opts, core.WithAttributes(toSet(ed.Attributes)))
		}
		e, err := core.NewEdge(toSet(ed.In), toSet(ed.Out), opts...)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		edges = append(edges, e)
	}
	return edges, nil
}

// metagraph builds the plain metagraph a document describes. For a
// conditional document the underlying metagraph is returned.
func (d *document) metagraph() (*core.Metagraph, error) {
	if d.isConditional() {
		cmg, err := d.conditional()
		if err != nil {
			return nil, err
		}
		return cmg.Underlying(), nil
	}
	g, err := core.New(toSet(d.GeneratingSet))
	if err != nil {
		return nil, err
	}
	edges, err := d.edges()
	if err != nil {
		return nil, err
	}
	if err := g.AddEdgesFrom(edges); err != nil {
		return nil, err
	}
	return g, nil
}

// conditional builds the conditional metagraph a document describes.
func (d *document) conditional() (*core.ConditionalMetagraph, error) {
	if !d.isConditional() {
		return nil, fmt.Errorf("document has no variables/propositions partition")
	}
	cmg, err := core.NewConditional(toSet(d.Variables), toSet(d.Propositions))
	if err != nil {
		return nil, err
	}
	edges, err := d.edges()
	if err != nil {
		return nil, err
	}
	if err := cmg.AddEdgesFrom(edges); err != nil {
		return nil, err
	}
	return cmg, nil
}

func toSet(elements []string) core.Set {
	els := make([]core.Element, len(elements))
	for i, el := range elements {
		els[i] = core.Element(el)
	}
	return core.NewSet(els...)
}
