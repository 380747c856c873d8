// Package kg assembles translated nodes and edges into a knowledge graph.
//
// It registers as "translator.kg" and resolves lazily so that the graph
// backend is only selected when something asks for it.
package kg

import (
	"github.com/agentuity/translator-check/registry"
	"github.com/agentuity/translator-check/translator"
)

// Version of the kg translator.
const Version = "0.1.4"

// Backend is the graph store the translator writes to.
const Backend = "memory"

type module struct {
	backend string
}

func (m *module) Name() string { return "kg" }

func (m *module) Info() string {
	return "kg translator " + Version + " (backend: " + m.backend + ")"
}

func load() (registry.Module, error) {
	return &module{backend: Backend}, nil
}

func init() {
	registry.RegisterLoader(translator.ModuleName("kg"), load)
}
