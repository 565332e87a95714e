package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relaxis/digraph/core"
)

func TestUUIDSeq_ProducesDistinctIds(t *testing.T) {
	seq := core.NewUUIDSeq[core.NodeId]()
	id1, ok := seq.Head()
	require.True(t, ok)
	seq = seq.Advance()
	id2, ok := seq.Head()
	require.True(t, ok)
	require.NotEqual(t, id1, id2)
}

func TestUUIDSeq_PushbackReplaysId(t *testing.T) {
	seq := core.NewUUIDSeq[core.EdgeId]()
	id, _ := seq.Head()
	seq = seq.Advance().Pushback(id)
	replayed, _ := seq.Head()
	require.Equal(t, id, replayed)
}
