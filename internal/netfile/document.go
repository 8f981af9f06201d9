package netfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hyperpath/network"
)

// kindBounded is the file-level kind for links given by min/max travel time.
const kindBounded = "bounded"

type document struct {
	Nodes  []nodeRecord       `json:"nodes,omitempty" yaml:"nodes,omitempty" toml:"nodes,omitempty"`
	Links  []linkRecord       `json:"links" yaml:"links" toml:"links"`
	Demand map[string]float64 `json:"demand,omitempty" yaml:"demand,omitempty" toml:"demand,omitempty"`
}

type nodeRecord struct {
	ID   string `json:"id" yaml:"id" toml:"id"`
	Role string `json:"role,omitempty" yaml:"role,omitempty" toml:"role,omitempty"`
}

type linkRecord struct {
	ID        string   `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	From      string   `json:"from" yaml:"from" toml:"from"`
	To        string   `json:"to" yaml:"to" toml:"to"`
	Kind      string   `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`
	Cost      float64  `json:"cost" yaml:"cost" toml:"cost"`
	Frequency float64  `json:"frequency,omitempty" yaml:"frequency,omitempty" toml:"frequency,omitempty"`
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty" toml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty" toml:"max,omitempty"`
}

// UnmarshalYAML switches on the "kind" discriminator so that each kind only
// accepts its own numeric fields.
func (r *linkRecord) UnmarshalYAML(value *yaml.Node) error {
	head := struct {
		Kind string `yaml:"kind"`
	}{}
	if err := value.Decode(&head); err != nil {
		return err
	}

	type plain linkRecord
	switch head.Kind {
	case "", "walk":
		var v struct {
			ID   string  `yaml:"id"`
			From string  `yaml:"from"`
			To   string  `yaml:"to"`
			Kind string  `yaml:"kind"`
			Cost float64 `yaml:"cost"`
		}
		if err := value.Decode(&v); err != nil {
			return err
		}
		*r = linkRecord{ID: v.ID, From: v.From, To: v.To, Kind: v.Kind, Cost: v.Cost}
	case "line", kindBounded:
		var v plain
		if err := value.Decode(&v); err != nil {
			return err
		}
		*r = linkRecord(v)
	default:
		return fmt.Errorf("%w: line %d: unknown link kind %q", network.ErrInvalidNetwork, value.Line, head.Kind)
	}

	return nil
}

// link converts the record into a network.Link.
func (r linkRecord) link() (network.Link, error) {
	if r.Kind == kindBounded {
		if r.Min == nil || r.Max == nil {
			return network.Link{}, fmt.Errorf("%w: bounded link %q needs min and max", network.ErrInvalidNetwork, r.ID)
		}
		return network.Bounded(r.ID, r.From, r.To, *r.Min, *r.Max)
	}
	kind, err := network.ParseKind(r.Kind)
	if err != nil {
		return network.Link{}, err
	}
	if kind == network.KindWalk {
		return network.Walk(r.ID, r.From, r.To, r.Cost), nil
	}

	return network.Line(r.ID, r.From, r.To, r.Cost, r.Frequency), nil
}

// build freezes the document into a network.
func (d *document) build() (*network.Network, error) {
	b := network.NewBuilder(network.WithAutoNodes())
	for _, n := range d.Nodes {
		role, err := network.ParseRole(n.Role)
		if err != nil {
			return nil, err
		}
		if err := b.AddNode(n.ID, role); err != nil {
			return nil, err
		}
	}
	for i, r := range d.Links {
		l, err := r.link()
		if err != nil {
			return nil, fmt.Errorf("link #%d: %w", i, err)
		}
		if err := b.AddLink(l); err != nil {
			return nil, fmt.Errorf("link #%d: %w", i, err)
		}
	}

	return b.Build()
}

// fromNetwork renders net (and demand) as a document.
func fromNetwork(net *network.Network, demand map[string]float64) *document {
	d := &document{Demand: demand}
	for _, n := range net.Nodes() {
		rec := nodeRecord{ID: n.ID}
		if n.Role != network.RoleTransfer {
			rec.Role = n.Role.String()
		}
		d.Nodes = append(d.Nodes, rec)
	}
	for _, l := range net.Links() {
		rec := linkRecord{ID: l.ID, From: l.From, To: l.To, Kind: l.Kind.String(), Cost: l.Cost}
		if l.Kind == network.KindLine {
			rec.Frequency = l.Frequency
		}
		d.Links = append(d.Links, rec)
	}

	return d
}
