package mcp

import (
	"context"

	"github.com/custodia-labs/idms-console/internal/core/domain"
)

// mockUploadCoordinator is a mock implementation of driving.UploadCoordinator.
type mockUploadCoordinator struct {
	selected *domain.UploadFile
	doc      *domain.RoutedDocument
	err      error
	submits  int
}

func (m *mockUploadCoordinator) SelectFile(file *domain.UploadFile) {
	m.selected = file
}

func (m *mockUploadCoordinator) Candidate() *domain.UploadFile {
	return m.selected
}

func (m *mockUploadCoordinator) Submit(_ context.Context) (*domain.RoutedDocument, error) {
	m.submits++
	return m.doc, m.err
}

func (m *mockUploadCoordinator) SubmitFile(ctx context.Context, file *domain.UploadFile) (*domain.RoutedDocument, error) {
	m.selected = file
	return m.Submit(ctx)
}

func (m *mockUploadCoordinator) State() domain.UploadState {
	return domain.UploadIdle
}

func (m *mockUploadCoordinator) LastError() string {
	return ""
}

// mockDepartmentRouter is a mock implementation of driving.DepartmentRouter.
type mockDepartmentRouter struct {
	active   domain.Department
	byDep    map[domain.Department][]domain.RoutedDocument
	unrouted []domain.RoutedDocument
}

func (m *mockDepartmentRouter) Departments() []domain.Department {
	return domain.Departments()
}

func (m *mockDepartmentRouter) Active() domain.Department {
	if m.active == "" {
		return domain.DefaultDepartment
	}
	return m.active
}

func (m *mockDepartmentRouter) SelectDepartment(dep domain.Department) error {
	if !dep.IsValid() {
		return domain.ErrUnknownDepartment
	}
	m.active = dep
	return nil
}

func (m *mockDepartmentRouter) VisibleDocuments() []domain.RoutedDocument {
	return m.DocumentsFor(m.Active())
}

func (m *mockDepartmentRouter) DocumentsFor(dep domain.Department) []domain.RoutedDocument {
	return m.byDep[dep]
}

func (m *mockDepartmentRouter) Unrouted() []domain.RoutedDocument {
	return m.unrouted
}

func (m *mockDepartmentRouter) Counts() map[domain.Department]int {
	counts := map[domain.Department]int{domain.DepartmentUnrouted: len(m.unrouted)}
	for _, dep := range domain.Departments() {
		counts[dep] = len(m.byDep[dep])
	}
	return counts
}

// mockDocumentPresenter is a mock implementation of driving.DocumentPresenter.
type mockDocumentPresenter struct{}

func (m *mockDocumentPresenter) Present(doc domain.RoutedDocument) domain.DocumentCard {
	return domain.DocumentCard{
		DocumentID:     doc.ID,
		Label:          doc.PredictedLabel,
		ConfidenceText: "0.87",
		OpenURL:        "http://files/" + doc.RawRouteTo + "/" + doc.StoredName(),
		Department:     doc.RouteTo,
	}
}

func (m *mockDocumentPresenter) PresentAll(docs []domain.RoutedDocument) []domain.DocumentCard {
	cards := make([]domain.DocumentCard, len(docs))
	for i := range docs {
		cards[i] = m.Present(docs[i])
	}
	return cards
}

// resolveAny accepts every path as a file named after its base.
func resolveAny(input string) (*domain.UploadFile, error) {
	return domain.NewUploadFile(input), nil
}

func financeDoc(id string) domain.RoutedDocument {
	return domain.RoutedDocument{
		ID:             id,
		PredictedLabel: "invoice",
		RouteTo:        domain.DepartmentFinance,
		RawRouteTo:     "finance",
		StoredAt:       "/data/" + id + ".pdf",
	}
}

func validPorts() *Ports {
	return &Ports{
		Upload:      &mockUploadCoordinator{},
		Router:      &mockDepartmentRouter{},
		Presenter:   &mockDocumentPresenter{},
		ResolveFile: resolveAny,
	}
}
