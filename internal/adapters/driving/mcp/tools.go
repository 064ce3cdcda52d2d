package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/idms-console/internal/core/domain"
)

// IngestInput is the input schema for the ingest_document tool.
type IngestInput struct {
	Path string `json:"path" jsonschema:"local path or file:// URI of the document to upload"`
}

// IngestOutput is the output schema for the ingest_document tool.
type IngestOutput struct {
	Document DocumentOutput `json:"document"`
	Routed   bool           `json:"routed"`
	Note     string         `json:"note,omitempty"`
}

// ListInput is the input schema for the list_documents tool.
type ListInput struct {
	Department string `json:"department,omitempty" jsonschema:"finance, admin, manual_review or unrouted (default: the active department)"`
}

// ListOutput is the output schema for the list_documents tool.
type ListOutput struct {
	Department string           `json:"department"`
	Documents  []DocumentOutput `json:"documents"`
	Count      int              `json:"count"`
}

// DocumentOutput is a presented document card.
type DocumentOutput struct {
	DocumentID string `json:"document_id"`
	Label      string `json:"label"`
	Confidence string `json:"confidence,omitempty"`
	OpenURL    string `json:"open_url"`
	Department string `json:"department"`
}

func toDocumentOutput(card domain.DocumentCard) DocumentOutput {
	return DocumentOutput{
		DocumentID: card.DocumentID,
		Label:      card.Label,
		Confidence: card.ConfidenceText,
		OpenURL:    card.OpenURL,
		Department: card.Department.String(),
	}
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ingest_document",
		Description: "Upload a local document for classification and department routing",
	}, s.handleIngest)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List documents routed to a department during this session",
	}, s.handleList)
}

// handleIngest handles the ingest_document tool invocation.
func (s *Server) handleIngest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IngestInput,
) (*mcp.CallToolResult, IngestOutput, error) {
	file, err := s.ports.ResolveFile(input.Path)
	if err != nil {
		return nil, IngestOutput{}, fmt.Errorf("resolving path: %w", err)
	}

	doc, err := s.ports.Upload.SubmitFile(ctx, file)
	switch {
	case errors.Is(err, domain.ErrUploadInProgress):
		return nil, IngestOutput{}, domain.ErrUploadInProgress
	case err != nil:
		return nil, IngestOutput{}, errors.New(domain.UploadFailedMessage)
	}

	return nil, IngestOutput{
		Document: toDocumentOutput(s.ports.Presenter.Present(*doc)),
		Routed:   doc.Routed(),
		Note:     doc.Note,
	}, nil
}

// handleList handles the list_documents tool invocation.
func (s *Server) handleList(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	dep, docs, err := s.documentsFor(input.Department)
	if err != nil {
		return nil, ListOutput{}, err
	}

	output := ListOutput{
		Department: dep.String(),
		Documents:  make([]DocumentOutput, len(docs)),
		Count:      len(docs),
	}
	for i, card := range s.ports.Presenter.PresentAll(docs) {
		output.Documents[i] = toDocumentOutput(card)
	}
	return nil, output, nil
}

// documentsFor resolves a department name. Empty means the active department.
func (s *Server) documentsFor(name string) (domain.Department, []domain.RoutedDocument, error) {
	if name == "" {
		dep := s.ports.Router.Active()
		return dep, s.ports.Router.DocumentsFor(dep), nil
	}
	if name == domain.DepartmentUnrouted.String() {
		return domain.DepartmentUnrouted, s.ports.Router.Unrouted(), nil
	}
	dep, err := domain.ParseDepartment(name)
	if err != nil {
		return dep, nil, err
	}
	return dep, s.ports.Router.DocumentsFor(dep), nil
}
