package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/idms-console/internal/core/domain"
)

// uriScheme is the custom URI scheme for console resources.
const uriScheme = "idms://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "departments",
		Name:        "departments",
		Description: "Departments with their document counts for this session",
		MIMEType:    "application/json",
	}, s.handleDepartmentsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "departments/{department}/documents",
		Name:        "department-documents",
		Description: "Document cards routed to a department",
		MIMEType:    "application/json",
	}, s.handleDepartmentDocumentsResource)
}

// departmentInfo is one entry of the departments resource.
type departmentInfo struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Count       int    `json:"count"`
	Active      bool   `json:"active"`
}

// handleDepartmentsResource lists the fixed departments plus the unrouted bucket.
func (s *Server) handleDepartmentsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	counts := s.ports.Router.Counts()
	active := s.ports.Router.Active()

	deps := append(s.ports.Router.Departments(), domain.DepartmentUnrouted)
	infos := make([]departmentInfo, len(deps))
	for i, dep := range deps {
		infos[i] = departmentInfo{
			Name:        dep.String(),
			Label:       dep.Label(),
			Description: dep.Description(),
			Count:       counts[dep],
			Active:      dep == active,
		}
	}

	return jsonResource(req.Params.URI, infos)
}

// handleDepartmentDocumentsResource returns the cards for one department.
func (s *Server) handleDepartmentDocumentsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractDepartment(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	_, docs, err := s.documentsFor(name)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	cards := s.ports.Presenter.PresentAll(docs)
	out := make([]DocumentOutput, len(cards))
	for i, card := range cards {
		out[i] = toDocumentOutput(card)
	}
	return jsonResource(req.Params.URI, out)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractDepartment extracts the department from idms://departments/{department}/documents.
func extractDepartment(uri string) string {
	const prefix = uriScheme + "departments/"
	const suffix = "/documents"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
