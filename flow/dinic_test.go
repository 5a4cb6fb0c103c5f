package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowcut/core"
	"github.com/katalvlaran/flowcut/flow"
)

// DinicSuite groups tests for the Dinic alternative.
type DinicSuite struct {
	suite.Suite
}

// TestSimplePath: 0→1 (cap=7) => maxFlow = 7.
func (s *DinicSuite) TestSimplePath() {
	n, err := core.New(2, []core.Edge{{From: 0, To: 1, Capacity: 7}})
	require.NoError(s.T(), err)

	mf, err := flow.Dinic(n, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), mf)
}

// TestTextbookScenario: Dinic saturates the classic network at 19 with
// the same cut as Edmonds–Karp.
func (s *DinicSuite) TestTextbookScenario() {
	n := textbookNetwork(s.T())

	mf, err := flow.Dinic(n, nodeS, nodeT)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(19), mf)
	checkFlowInvariants(s.T(), n, nodeS, nodeT, mf)

	cut, err := flow.MinCut(n, nodeS, nodeT)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{nodeS, nodeZ}, cut.S)
	require.Equal(s.T(), mf, cut.Capacity)
}

// TestLevelRebuildInterval: forced rebuilds change scheduling, never the
// flow value.
func (s *DinicSuite) TestLevelRebuildInterval() {
	base := textbookNetwork(s.T())
	forced := base.Clone()

	mfBase, err := flow.Dinic(base, nodeS, nodeT)
	require.NoError(s.T(), err)
	mfForced, err := flow.Dinic(forced, nodeS, nodeT, flow.WithLevelRebuildInterval(1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), mfBase, mfForced)
}

// TestAgreementRandom: Dinic and Edmonds–Karp agree on generated
// networks, and both satisfy the flow invariants.
func (s *DinicSuite) TestAgreementRandom() {
	seeds := []uint64{3, 11, 29, 4242}
	for _, seed := range seeds {
		ek := randomNetwork(s.T(), 20, 0.2, 15, seed)
		dn := ek.Clone()
		source, sink := 0, ek.NodeCount()-1

		mfEK, err := flow.MaxFlow(ek, source, sink)
		require.NoError(s.T(), err)
		mfDN, err := flow.Dinic(dn, source, sink)
		require.NoError(s.T(), err)

		require.Equal(s.T(), mfEK, mfDN, "algorithms disagree for seed %d", seed)
		checkFlowInvariants(s.T(), dn, source, sink, mfDN)
	}
}

func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}
