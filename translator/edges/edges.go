// Package edges translates relations between entities into graph edges.
package edges

import (
	"github.com/agentuity/translator-check/registry"
	"github.com/agentuity/translator-check/translator"
)

// Version of the edges translator.
const Version = "0.3.0"

type module struct{}

func (module) Name() string { return "edges" }

// Info reports the version and the edge kinds this build can emit.
func (module) Info() string {
	return "edges translator " + Version + " (directed, weighted)"
}

func init() {
	registry.Register(translator.ModuleName("edges"), module{})
}
