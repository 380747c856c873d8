// Package tom holds the translator object model shared by the other translators.
package tom

import (
	"github.com/agentuity/translator-check/registry"
	"github.com/agentuity/translator-check/translator"
)

const Version = "0.2.0"

type module struct{}

func (module) Name() string { return "tom" }

func init() {
	registry.Register(translator.ModuleName("tom"), module{})
}
