package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/idms-console/internal/core/domain"
)

func TestNewDocumentRegistry(t *testing.T) {
	r := NewDocumentRegistry()
	require.NotNil(t, r)
	assert.Equal(t, 0, r.Len())
	assert.NotNil(t, r.All())
	assert.Empty(t, r.All())
}

func TestDocumentRegistry_AppendPreservesOrder(t *testing.T) {
	r := NewDocumentRegistry()

	for i := 0; i < 5; i++ {
		r.Append(domain.RoutedDocument{ID: fmt.Sprintf("doc-%d", i)})
	}

	all := r.All()
	require.Len(t, all, 5)
	for i, doc := range all {
		assert.Equal(t, fmt.Sprintf("doc-%d", i), doc.ID)
	}
	assert.Equal(t, 5, r.Len())
}

func TestDocumentRegistry_AllReturnsCopy(t *testing.T) {
	r := NewDocumentRegistry()
	r.Append(domain.RoutedDocument{ID: "doc-1", PredictedLabel: "invoice"})

	all := r.All()
	all[0].PredictedLabel = "changed"

	assert.Equal(t, "invoice", r.All()[0].PredictedLabel)
}

func TestDocumentRegistry_AppendCopiesProbability(t *testing.T) {
	r := NewDocumentRegistry()
	p := 0.873
	r.Append(domain.RoutedDocument{ID: "doc-1", Probability: &p})

	p = 0.1

	stored := r.All()[0]
	require.NotNil(t, stored.Probability)
	assert.InDelta(t, 0.873, *stored.Probability, 1e-9)
}

func TestDocumentRegistry_ConcurrentAppend(t *testing.T) {
	r := NewDocumentRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Append(domain.RoutedDocument{ID: fmt.Sprintf("doc-%d", n)})
			_ = r.All()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, r.Len())
}
