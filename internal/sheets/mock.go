package sheets

import (
	"context"
	"sync"

	"github.com/Veraticus/marksman/internal/model"
	"github.com/Veraticus/marksman/internal/service"
)

// MockLedger is an in-memory service.Ledger for testing. Applied annotations
// are written into Rows so a second fetch sees them.
type MockLedger struct {
	FetchErr   error
	ApplyErrs  map[service.AnnotationKind]error
	Rows       []model.Transaction
	ApplyCalls []ApplyCall
	FetchCalls int
	mu         sync.Mutex
}

// ApplyCall represents a single call to ApplyAnnotations.
type ApplyCall struct {
	Error error
	Kind  service.AnnotationKind
	Rows  []model.Annotation
}

// NewMockLedger creates a mock ledger holding a copy of rows.
func NewMockLedger(rows []model.Transaction) *MockLedger {
	return &MockLedger{
		Rows:      append([]model.Transaction(nil), rows...),
		ApplyErrs: make(map[service.AnnotationKind]error),
	}
}

// FetchTransactions implements service.LedgerSource.
func (m *MockLedger) FetchTransactions(_ context.Context) ([]model.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FetchCalls++
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	return append([]model.Transaction(nil), m.Rows...), nil
}

// ApplyAnnotations implements service.LedgerSink.
func (m *MockLedger) ApplyAnnotations(_ context.Context, kind service.AnnotationKind, rows []model.Annotation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.ApplyErrs[kind]
	m.ApplyCalls = append(m.ApplyCalls, ApplyCall{
		Kind:  kind,
		Rows:  append([]model.Annotation(nil), rows...),
		Error: err,
	})
	if err != nil {
		return err
	}

	for _, a := range rows {
		i := a.Row - model.FirstDataRow
		if i < 0 || i >= len(m.Rows) {
			continue
		}
		switch kind {
		case service.DuplicateMark:
			m.Rows[i].Subject = a.Transaction.Subject
		case service.CategoryMark:
			m.Rows[i].Category = a.Transaction.Category
		}
	}
	return nil
}

// SetApplyError configures the mock to fail every write of kind.
func (m *MockLedger) SetApplyError(kind service.AnnotationKind, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ApplyErrs[kind] = err
}

// GetApplyCalls returns a copy of all apply calls.
func (m *MockLedger) GetApplyCalls() []ApplyCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]ApplyCall, len(m.ApplyCalls))
	copy(calls, m.ApplyCalls)
	return calls
}
