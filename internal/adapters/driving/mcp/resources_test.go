package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/idms-console/internal/core/domain"
)

func TestExtractDepartment(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"valid URI", "idms://departments/finance/documents", "finance"},
		{"invalid prefix", "file://departments/finance/documents", ""},
		{"missing documents suffix", "idms://departments/finance", ""},
		{"empty URI", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractDepartment(tt.uri))
		})
	}
}

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestServer_handleDepartmentsResource(t *testing.T) {
	ports := validPorts()
	ports.Router = &mockDepartmentRouter{
		active: domain.DepartmentAdmin,
		byDep: map[domain.Department][]domain.RoutedDocument{
			domain.DepartmentFinance: {financeDoc("a")},
		},
		unrouted: []domain.RoutedDocument{{ID: "u"}, {ID: "v"}},
	}
	server, err := NewServer(ports)
	require.NoError(t, err)

	result, err := server.handleDepartmentsResource(context.Background(), readRequest("idms://departments"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var infos []departmentInfo
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
	require.Len(t, infos, 4)
	assert.Equal(t, "finance", infos[0].Name)
	assert.Equal(t, "FINANCE", infos[0].Label)
	assert.Equal(t, 1, infos[0].Count)
	assert.False(t, infos[0].Active)
	assert.True(t, infos[1].Active)
	assert.Equal(t, "manual_review", infos[2].Name)
	assert.Equal(t, "unrouted", infos[3].Name)
	assert.Equal(t, 2, infos[3].Count)
}

func TestServer_handleDepartmentDocumentsResource(t *testing.T) {
	ports := validPorts()
	ports.Router = &mockDepartmentRouter{
		byDep: map[domain.Department][]domain.RoutedDocument{
			domain.DepartmentFinance: {financeDoc("a")},
		},
	}
	server, err := NewServer(ports)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("returns cards", func(t *testing.T) {
		uri := "idms://departments/finance/documents"
		result, err := server.handleDepartmentDocumentsResource(ctx, readRequest(uri))

		require.NoError(t, err)
		assert.Equal(t, uri, result.Contents[0].URI)
		var docs []DocumentOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &docs))
		require.Len(t, docs, 1)
		assert.Equal(t, "a", docs[0].DocumentID)
		assert.Equal(t, "0.87", docs[0].Confidence)
	})

	t.Run("empty department is an empty list", func(t *testing.T) {
		result, err := server.handleDepartmentDocumentsResource(ctx, readRequest("idms://departments/admin/documents"))

		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("unknown department is not found", func(t *testing.T) {
		_, err := server.handleDepartmentDocumentsResource(ctx, readRequest("idms://departments/legal/documents"))

		assert.Error(t, err)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		_, err := server.handleDepartmentDocumentsResource(ctx, readRequest("idms://departments/finance"))

		assert.Error(t, err)
	})
}
