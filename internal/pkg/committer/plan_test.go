package committer

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_SkipsNil(t *testing.T) {
	p := NewPlan()
	assert.True(t, p.IsEmpty())

	p.Add(nil)
	assert.True(t, p.IsEmpty())

	p.Add(spanner.Delete("products", spanner.Key{int64(1)}))
	assert.False(t, p.IsEmpty())
	assert.Equal(t, 1, p.Len())
	assert.Len(t, p.Mutations(), 1)
}

func TestAdapter_EmptyPlanIsNoop(t *testing.T) {
	a := NewAdapter(nil)
	require.NoError(t, a.Apply(context.Background(), nil))
	require.NoError(t, a.Apply(context.Background(), NewPlan()))
}

func TestAdapter_NilClient(t *testing.T) {
	p := NewPlan()
	p.Add(spanner.Delete("products", spanner.Key{int64(1)}))

	err := NewAdapter(nil).Apply(context.Background(), p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spanner client is nil")
}
