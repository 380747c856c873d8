package registry

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testModule struct {
	name string
}

func (m testModule) Name() string { return m.name }

type infoModule struct {
	testModule
	info string
}

func (m infoModule) Info() string { return m.info }

func TestRegisterAndLoad(t *testing.T) {
	reg := New()
	reg.Register("translator.nodes", testModule{name: "nodes"})

	m, err := reg.Load("translator.nodes")
	require.NoError(t, err)
	assert.Equal(t, "nodes", m.Name())

	_, isInformer := m.(Informer)
	assert.False(t, isInformer)
}

func TestLoadInformer(t *testing.T) {
	reg := New()
	reg.Register("translator.kg", infoModule{testModule{"kg"}, "v1"})

	m, err := reg.Load("translator.kg")
	require.NoError(t, err)
	informer, ok := m.(Informer)
	require.True(t, ok)
	assert.Equal(t, "v1", informer.Info())
}

func TestLoadMissing(t *testing.T) {
	reg := New()

	m, err := reg.Load("translator.tom")
	assert.Nil(t, m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrModuleNotFound))
	assert.Equal(t, "no module named 'translator.tom': module not found", err.Error())
}

func TestLoaderErrors(t *testing.T) {
	tests := []struct {
		name        string
		loader      Loader
		wantErr     string
		wantMissing bool
	}{
		{
			name:    "loader error",
			loader:  func() (Module, error) { return nil, errors.New("bad config") },
			wantErr: "bad config",
		},
		{
			name: "loader dependency missing",
			loader: func() (Module, error) {
				return nil, errors.Wrap(ErrModuleNotFound, "no module named 'graphlib'")
			},
			wantErr:     "no module named 'graphlib': module not found",
			wantMissing: true,
		},
		{
			name:    "loader panic",
			loader:  func() (Module, error) { panic("init failed") },
			wantErr: "panic: init failed",
		},
		{
			name:    "loader returns nil module",
			loader:  func() (Module, error) { return nil, nil },
			wantErr: "module 'translator.edges' loader returned no module",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := New()
			reg.RegisterLoader("translator.edges", tt.loader)
			_, err := reg.Load("translator.edges")
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Equal(t, tt.wantMissing, errors.Is(err, ErrModuleNotFound))
		})
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	reg := New()
	reg.Register("translator.nodes", testModule{name: "nodes"})
	assert.PanicsWithValue(t, "module with name 'translator.nodes' already registered", func() {
		reg.Register("translator.nodes", testModule{name: "nodes"})
	})
}

func TestRegisterNilPanics(t *testing.T) {
	reg := New()
	assert.Panics(t, func() { reg.Register("translator.nodes", nil) })
	assert.Panics(t, func() { reg.RegisterLoader("translator.nodes", nil) })
}

func TestNames(t *testing.T) {
	reg := New()
	assert.Empty(t, reg.Names())
	reg.Register("translator.tom", testModule{name: "tom"})
	reg.Register("translator.edges", testModule{name: "edges"})
	assert.Equal(t, []string{"translator.edges", "translator.tom"}, reg.Names())
}
