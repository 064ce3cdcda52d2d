package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPCmd_Structure(t *testing.T) {
	assert.Equal(t, "mcp", mcpCmd.Use)
	require.Len(t, mcpCmd.Commands(), 1)
	assert.Equal(t, "serve", mcpCmd.Commands()[0].Name())
}

func TestMCPServeCmd_PortFlag(t *testing.T) {
	port := mcpServeCmd.Flags().Lookup("port")

	require.NotNil(t, port)
	assert.Equal(t, "p", port.Shorthand)
	assert.Equal(t, "0", port.DefValue)
}

func TestMCPServeCmd_NotConfigured(t *testing.T) {
	SetServiceFactory(nil)

	_, err := execute("mcp", "serve")

	assert.ErrorIs(t, err, errNotConfigured)
}

func TestMCPServeCmd_InvalidPorts(t *testing.T) {
	SetServiceFactory(func(Options) (*Services, error) {
		return &Services{}, nil
	})
	defer SetServiceFactory(nil)

	_, err := execute("mcp", "serve")

	assert.Error(t, err)
}
