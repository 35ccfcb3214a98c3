package gardens

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/gardens/internal/database"
	"github.com/mrlokans/gardens/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *database.Database) {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "gardens.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.DB), db
}

func strPtr(s string) *string      { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func fullInput() entities.GardenInput {
	return entities.GardenInput{
		Name:              strPtr("Strathcona Community Garden"),
		Type:              strPtr("Community"),
		Neighborhood:      strPtr("Strathcona"),
		Address:           strPtr("759 Malkin Ave"),
		Longitude:         floatPtr(-123.0861),
		Latitude:          floatPtr(49.2738),
		Contact:           strPtr("info@strathconagarden.org"),
		PlotsAvailable:    intPtr(200),
		YearCreated:       strPtr("1985"),
		FoodTreeVarieties: strPtr("apple, pear"),
		Jurisdiction:      strPtr("Parks"),
		Steward:           strPtr("Strathcona Community Gardeners Society"),
		PublicEmail:       strPtr("info@strathconagarden.org"),
		Website:           strPtr("https://strathconagarden.org"),
		GeoLocalArea:      strPtr("Strathcona"),
	}
}

func TestRepository_Create(t *testing.T) {
	repo, _ := setupTestDB(t)

	garden, err := repo.Create(fullInput())
	require.NoError(t, err)
	require.NotNil(t, garden)

	assert.NotZero(t, garden.ID)
	want := fullInput().Garden()
	want.ID = garden.ID
	assert.Equal(t, want, *garden)
}

func TestRepository_Create_KeepsSurroundingWhitespace(t *testing.T) {
	repo, _ := setupTestDB(t)

	var in entities.GardenInput
	require.NoError(t, json.Unmarshal([]byte(`{"name": "  Strathcona Garden  ", "website": "   "}`), &in))

	created, err := repo.Create(in)
	require.NoError(t, err)

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "  Strathcona Garden  ", got.Name)
	assert.Equal(t, "   ", got.Website)
	assert.Equal(t, "", got.Type)
}

func TestRepository_Create_EmptyInputUsesZeroDefaults(t *testing.T) {
	repo, _ := setupTestDB(t)

	garden, err := repo.Create(entities.GardenInput{})
	require.NoError(t, err)
	require.NotNil(t, garden)

	assert.NotZero(t, garden.ID)
	assert.Equal(t, "", garden.Name)
	assert.Equal(t, "", garden.Type)
	assert.Equal(t, 0.0, garden.Longitude)
	assert.Equal(t, 0.0, garden.Latitude)
	assert.Equal(t, 0, garden.PlotsAvailable)
}

func TestRepository_Create_NoNullColumns(t *testing.T) {
	repo, db := setupTestDB(t)

	garden, err := repo.Create(entities.GardenInput{})
	require.NoError(t, err)

	var nulls int64
	err = db.DB.Raw(`SELECT COUNT(*) FROM gardens WHERE id = ? AND (
		name IS NULL OR type IS NULL OR neighborhood IS NULL OR address IS NULL OR
		longitude IS NULL OR latitude IS NULL OR contact IS NULL OR plots_available IS NULL OR
		year_created IS NULL OR food_tree_varieties IS NULL OR jurisdiction IS NULL OR
		steward IS NULL OR public_email IS NULL OR website IS NULL OR geo_local_area IS NULL)`,
		garden.ID).Scan(&nulls).Error
	require.NoError(t, err)
	assert.Zero(t, nulls)
}

func TestRepository_Create_AssignsUniqueIDs(t *testing.T) {
	repo, _ := setupTestDB(t)

	first, err := repo.Create(entities.GardenInput{Name: strPtr("First")})
	require.NoError(t, err)
	second, err := repo.Create(entities.GardenInput{Name: strPtr("Second")})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestRepository_GetByID(t *testing.T) {
	repo, _ := setupTestDB(t)

	t.Run("returns existing garden", func(t *testing.T) {
		created, err := repo.Create(fullInput())
		require.NoError(t, err)

		found, err := repo.GetByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, found)
	})

	t.Run("returns nil without error when absent", func(t *testing.T) {
		found, err := repo.GetByID(4242)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestRepository_GetAll(t *testing.T) {
	repo, _ := setupTestDB(t)

	t.Run("returns empty non-nil slice for empty table", func(t *testing.T) {
		gardens, err := repo.GetAll()
		require.NoError(t, err)
		assert.NotNil(t, gardens)
		assert.Empty(t, gardens)
	})

	t.Run("orders by ascending id regardless of updates", func(t *testing.T) {
		var ids []uint
		for _, name := range []string{"C", "A", "B"} {
			g, err := repo.Create(entities.GardenInput{Name: strPtr(name)})
			require.NoError(t, err)
			ids = append(ids, g.ID)
		}

		_, err := repo.Update(ids[0], entities.GardenInput{Name: strPtr("Z")})
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			gardens, err := repo.GetAll()
			require.NoError(t, err)
			require.Len(t, gardens, 3)
			for j := 1; j < len(gardens); j++ {
				assert.Less(t, gardens[j-1].ID, gardens[j].ID)
			}
			assert.Equal(t, "Z", gardens[0].Name)
		}
	})
}

func TestRepository_Update(t *testing.T) {
	repo, _ := setupTestDB(t)

	t.Run("replaces every field and keeps the id", func(t *testing.T) {
		created, err := repo.Create(fullInput())
		require.NoError(t, err)

		updated, err := repo.Update(created.ID, entities.GardenInput{
			Name:      strPtr("Renamed"),
			Longitude: floatPtr(-123.2),
		})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, entities.Garden{
			ID:        created.ID,
			Name:      "Renamed",
			Longitude: -123.2,
		}, *updated)

		found, err := repo.GetByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, found)
	})

	t.Run("writes explicit zero values", func(t *testing.T) {
		created, err := repo.Create(fullInput())
		require.NoError(t, err)

		in := fullInput()
		in.PlotsAvailable = intPtr(0)
		updated, err := repo.Update(created.ID, in)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.PlotsAvailable)
	})

	t.Run("returns nil without error for unknown id", func(t *testing.T) {
		updated, err := repo.Update(999, fullInput())
		assert.NoError(t, err)
		assert.Nil(t, updated)

		count, err := repo.Count()
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, _ := setupTestDB(t)

	t.Run("removes existing garden", func(t *testing.T) {
		created, err := repo.Create(fullInput())
		require.NoError(t, err)

		deleted, err := repo.Delete(created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		found, err := repo.GetByID(created.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("returns zero for unknown id", func(t *testing.T) {
		deleted, err := repo.Delete(12345)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})
}

func TestRepository_StorageErrorsPropagate(t *testing.T) {
	repo, db := setupTestDB(t)
	require.NoError(t, db.Close())

	_, err := repo.GetAll()
	assert.Error(t, err)
	_, err = repo.GetByID(1)
	assert.Error(t, err)
	_, err = repo.Create(fullInput())
	assert.Error(t, err)
	_, err = repo.Update(1, fullInput())
	assert.Error(t, err)
	_, err = repo.Delete(1)
	assert.Error(t, err)
	_, err = repo.Count()
	assert.Error(t, err)
}

func TestRepository_InsertBatch(t *testing.T) {
	repo, _ := setupTestDB(t)

	batch := []entities.Garden{
		{Name: "One", Type: "Food", Longitude: -123.1, Latitude: 49.2},
		{Name: "Two", Type: "Community", PlotsAvailable: 4},
		{ID: 77, Name: "Three"},
	}

	result := repo.InsertBatch(batch)
	assert.Equal(t, BatchResult{Inserted: 3}, result)

	for _, g := range batch {
		assert.NotZero(t, g.ID)
	}
	assert.NotEqual(t, uint(77), batch[2].ID)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, "One", all[0].Name)
	assert.Equal(t, 4, all[1].PlotsAvailable)
}

func TestRepository_InsertBatch_CountsFailures(t *testing.T) {
	repo, db := setupTestDB(t)
	require.NoError(t, db.Close())

	result := repo.InsertBatch([]entities.Garden{{Name: "A"}, {Name: "B"}})
	assert.Equal(t, BatchResult{Failed: 2}, result)
}
