package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("missing ports returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingUploadCoordinator)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(validPorts())
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Ports)
		want   error
	}{
		{"all ports", func(*Ports) {}, nil},
		{"no upload", func(p *Ports) { p.Upload = nil }, ErrMissingUploadCoordinator},
		{"no router", func(p *Ports) { p.Router = nil }, ErrMissingDepartmentRouter},
		{"no presenter", func(p *Ports) { p.Presenter = nil }, ErrMissingDocumentPresenter},
		{"no resolver", func(p *Ports) { p.ResolveFile = nil }, ErrMissingFileResolver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ports := validPorts()
			tt.mutate(ports)
			err := ports.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestNewServer_Version(t *testing.T) {
	server, err := NewServer(validPorts())
	require.NoError(t, err)
	assert.Equal(t, "dev", server.Version())

	server, err = NewServer(validPorts(), WithVersion("1.4.0"))
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", server.Version())

	server, err = NewServer(validPorts(), WithVersion(""))
	require.NoError(t, err)
	assert.Equal(t, "dev", server.Version())
}
