// Package nodes translates source entities into graph nodes.
package nodes

import (
	"github.com/agentuity/translator-check/registry"
	"github.com/agentuity/translator-check/translator"
)

// Version of the nodes translator.
const Version = "0.3.1"

type module struct{}

func (module) Name() string { return "nodes" }

func (module) Info() string { return "nodes translator " + Version }

func init() {
	registry.Register(translator.ModuleName("nodes"), module{})
}
