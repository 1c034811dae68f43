package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tube-catalog/domain/model"
)

func TestNewMetadata_Mongo(t *testing.T) {
	m := NewMetadata(model.PlaylistVideo{}, "bson")

	assert.Equal(t, "_id", m.ID)
	s, ok := m.Storage("videoOwnerChannelId")
	assert.True(t, ok)
	assert.Equal(t, "channelId", s)
	assert.Equal(t, "videoOwnerChannelTitle", m.Logical("channelTitle"))
	assert.Equal(t, "id", m.Logical("_id"))

	s, ok = m.Storage("unknown")
	assert.False(t, ok)
	assert.Equal(t, "unknown", s)
}

func TestNewMetadata_Cassandra(t *testing.T) {
	m := NewMetadata(&model.Video{}, "cql")

	assert.Equal(t, "id", m.ID)
	s, _ := m.Storage("publishedAt")
	assert.Equal(t, "publishedat", s)
	assert.Equal(t, "blockedRegions", m.Logical("blockedregions"))
	assert.True(t, m.Known("duration"))
	assert.False(t, m.Known("duration_seconds"))
}

func TestProject_DefaultFields(t *testing.T) {
	m := NewMetadata(model.Video{}, "bson")

	all := m.Project(nil, false)
	assert.Equal(t, m.Fields, all)
	assert.Contains(t, all, "description")

	lean := m.Project([]string{}, true)
	assert.NotContains(t, lean, "description")
	assert.NotContains(t, lean, "localizedDescription")
	assert.Contains(t, lean, "title")
	assert.Contains(t, lean, "_id")
}

func TestProject_RequestedFields(t *testing.T) {
	m := NewMetadata(model.Video{}, "cql")

	got := m.Project([]string{"title", "publishedAt", "bogus", "title"}, false)
	require.NotEmpty(t, got)
	assert.Equal(t, []string{"id", "title", "publishedat"}, got)
}

func TestProject_IdentityAlwaysIncluded(t *testing.T) {
	m := NewMetadata(model.Channel{}, "bson")
	assert.Equal(t, []string{"_id", "title"}, m.Project([]string{"title"}, false))
	assert.Equal(t, []string{"_id"}, m.Project([]string{"id"}, false))
}
