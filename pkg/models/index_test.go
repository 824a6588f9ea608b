//go:build unit || !integration

package models_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/shoal-project/shoal/pkg/models"
)

type IndexTestSuite struct {
	suite.Suite
}

func TestIndexTestSuite(t *testing.T) {
	suite.Run(t, new(IndexTestSuite))
}

func (s *IndexTestSuite) TestAllPrimaryShardsActive() {
	testCases := []struct {
		name    string
		routing models.IndexRouting
		active  bool
	}{
		{
			name: "single started primary",
			routing: models.IndexRouting{
				Index: "foo",
				Shards: []models.ShardRouting{
					{Shard: 0, Primary: true, State: models.ShardStateStarted, NodeID: "node-1"},
				},
			},
			active: true,
		},
		{
			name: "unassigned primary",
			routing: models.IndexRouting{
				Index: "foo",
				Shards: []models.ShardRouting{
					{Shard: 0, Primary: true, State: models.ShardStateUnassigned},
				},
			},
			active: false,
		},
		{
			name: "initializing primary among started ones",
			routing: models.IndexRouting{
				Index: "foo",
				Shards: []models.ShardRouting{
					{Shard: 0, Primary: true, State: models.ShardStateStarted, NodeID: "node-1"},
					{Shard: 1, Primary: true, State: models.ShardStateInitializing, NodeID: "node-2"},
				},
			},
			active: false,
		},
		{
			name: "relocating primary",
			routing: models.IndexRouting{
				Index: "foo",
				Shards: []models.ShardRouting{
					{Shard: 0, Primary: true, State: models.ShardStateRelocating, NodeID: "node-1"},
				},
			},
			active: false,
		},
		{
			name: "replica state does not matter",
			routing: models.IndexRouting{
				Index: "foo",
				Shards: []models.ShardRouting{
					{Shard: 0, Primary: true, State: models.ShardStateStarted, NodeID: "node-1"},
					{Shard: 0, Primary: false, State: models.ShardStateUnassigned},
				},
			},
			active: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.active, tc.routing.AllPrimaryShardsActive())
		})
	}
}

func (s *IndexTestSuite) TestStateParsing() {
	state, err := models.ParseIndexState("open")
	s.Require().NoError(err)
	s.Equal(models.IndexStateOpen, state)
	s.True(models.IndexMetadata{Name: "foo", State: state}.IsOpen())

	shardState, err := models.ParseShardState("relocating")
	s.Require().NoError(err)
	s.Equal(models.ShardStateRelocating, shardState)

	_, err = models.ParseShardState("floating")
	s.Error(err)
}
