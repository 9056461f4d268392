package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigration(t *testing.T) {
	cfg := GenerateTestConfig()
	cfg.CheckMigration = true
	_, err := CreateDatabase(cfg)
	assert.Nil(t, err)
}

func TestSearchIndexRebuild(t *testing.T) {
	cfg := &Config{
		SQLite:         SQLiteConfig{Path: "file:model_test_fts?mode=memory&cache=shared"},
		CheckMigration: true,
	}
	db, err := CreateDatabase(cfg)
	require.Nil(t, err)

	err = db.Create(&Entity{
		Name:        "Jeffrey Epstein",
		Type:        EntityTypePerson,
		Description: "financier, frequent flyer on private aircraft",
	}).Error
	require.Nil(t, err)

	err = db.Create(&Entity{
		Name:        "Trump Organization",
		Type:        EntityTypeOrganization,
		Description: "real estate company",
	}).Error
	require.Nil(t, err)

	// rebuild 之前索引内容不可信，rebuild 之后必须能命中
	err = RebuildSearchIndex(db)
	require.Nil(t, err)

	results, err := SearchEntities(db, "financier", 10)
	require.Nil(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Jeffrey Epstein", results[0].Name)

	results, err = SearchEntities(db, "company", 10)
	require.Nil(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Trump Organization", results[0].Name)
}

func TestRiskHistogramSchema(t *testing.T) {
	h := SchemaRiskHistogram{3, 0, 1, 0, 0, 2}
	parsed, err := ParseRiskHistogram(h.ToJSON())
	require.Nil(t, err)
	assert.Equal(t, h, parsed)
}
