package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxBuilder_Build_Empty(t *testing.T) {
	tb := NewTxBuilder()

	query, vars := tb.Build()
	assert.Empty(t, query)
	assert.Nil(t, vars)
}

func TestTxBuilder_Build_WrapsInTransaction(t *testing.T) {
	tb := NewTxBuilder()
	tb.Add("DELETE signup WHERE camper = $id", map[string]interface{}{"id": "camper:1"})
	tb.Add("DELETE $id", map[string]interface{}{"id": "camper:1"})

	query, vars := tb.Build()
	assert.True(t, strings.HasPrefix(query, "BEGIN TRANSACTION;"))
	assert.True(t, strings.HasSuffix(query, "COMMIT TRANSACTION;"))
	assert.Len(t, vars, 2)
}

func TestTxBuilder_Add_NamespacesVariables(t *testing.T) {
	tb := NewTxBuilder()
	tb.Add("DELETE signup WHERE activity = $id", map[string]interface{}{"id": "activity:1"})
	tb.Add("DELETE $id", map[string]interface{}{"id": "activity:2"})

	query, vars := tb.Build()

	// Both statements bound $id; the merged query must keep them distinct.
	require.Len(t, vars, 2)
	assert.NotContains(t, query, "$id")

	seen := map[interface{}]bool{}
	for _, v := range vars {
		seen[v] = true
	}
	assert.True(t, seen["activity:1"])
	assert.True(t, seen["activity:2"])
}

func TestAtomicBatch_Len(t *testing.T) {
	batch := NewAtomicBatch()
	assert.Equal(t, 0, batch.Len())

	batch.Add("DELETE signup WHERE camper = $id", map[string]interface{}{"id": "camper:9"}).
		Add("DELETE $id", map[string]interface{}{"id": "camper:9"})
	assert.Equal(t, 2, batch.Len())
}
