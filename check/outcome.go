package check

import (
	"time"

	"github.com/agentuity/translator-check/registry"
	"github.com/agentuity/translator-check/sys"
	"github.com/agentuity/translator-check/translator"
	"github.com/cockroachdb/errors"
)

// Status classifies one import attempt.
type Status int

const (
	StatusSuccess Status = iota
	StatusMissing
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusMissing:
		return "missing"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Resolver looks modules up by their dotted name.
type Resolver interface {
	Load(name string) (registry.Module, error)
}

// Outcome is the result of checking one translator subpackage.
type Outcome struct {
	ID     string
	Module string
	Status Status
	// Loaded is true when the module resolved, even if its Info call failed afterwards.
	Loaded  bool
	Info    string
	HasInfo bool
	Err     error
	Elapsed time.Duration
}

// Resolve checks the subpackage id and classifies the result. It never panics
// and never returns without an Outcome.
func Resolve(reg Resolver, id string) (o Outcome) {
	start := time.Now()
	o = Outcome{ID: id, Module: translator.ModuleName(id)}
	defer func() { o.Elapsed = time.Since(start) }()

	var m registry.Module
	err := sys.Guard(func() error {
		var err error
		m, err = reg.Load(o.Module)
		return err
	})
	switch {
	case errors.Is(err, registry.ErrModuleNotFound):
		o.Status = StatusMissing
		o.Err = err
		return o
	case err != nil:
		o.Status = StatusError
		o.Err = err
		return o
	}

	o.Loaded = true
	o.Status = StatusSuccess
	informer, ok := m.(registry.Informer)
	if !ok {
		return o
	}
	if err := sys.Guard(func() error {
		o.Info = informer.Info()
		return nil
	}); err != nil {
		o.Status = StatusError
		o.Err = err
		return o
	}
	o.HasInfo = true
	return o
}
