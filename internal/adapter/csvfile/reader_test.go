package csvfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/ejc-map/internal/adapter/csvfile"
	"github.com/couchcryptid/ejc-map/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "editions.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReader_Load(t *testing.T) {
	path := writeDataset(t, "issue;year;city;country;latitude;longitude\n"+
		"25;2002;Bremen;Germany;53.08;8.81\n"+
		"26;2003;Svendborg;Denmark;55.06;10.61\n")

	records, err := csvfile.NewReader(path).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.EventRecord{
		Issue: "25", Year: 2002, City: "Bremen", Country: "Germany", Lat: 53.08, Lon: 8.81,
	}, records[0])
	assert.Equal(t, "Svendborg", records[1].City)
}

func TestReader_Load_HeaderCaseInsensitive(t *testing.T) {
	path := writeDataset(t, "Issue;Year;City;Country;Latitude;Longitude\n"+
		"27;2004;Carvin;France;50.49;2.96\n")

	records, err := csvfile.NewReader(path).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Carvin", records[0].City)
}

func TestReader_Load_MissingFile(t *testing.T) {
	_, err := csvfile.NewReader(filepath.Join(t.TempDir(), "absent.csv")).Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReader_Load_MissingColumn(t *testing.T) {
	path := writeDataset(t, "issue;year;city;country;latitude\n25;2002;Bremen;Germany;53.08\n")

	_, err := csvfile.NewReader(path).Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "longitude"`)
}

func TestReader_Load_BadField(t *testing.T) {
	path := writeDataset(t, "issue;year;city;country;latitude;longitude\n"+
		"25;2002;Bremen;Germany;53.08;8.81\n"+
		"26;not-a-year;Svendborg;Denmark;55.06;10.61\n")

	_, err := csvfile.NewReader(path).Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "parse year")
}

func TestReader_Load_EmptyFile(t *testing.T) {
	path := writeDataset(t, "")

	_, err := csvfile.NewReader(path).Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestReader_Load_HeaderOnly(t *testing.T) {
	path := writeDataset(t, "issue;year;city;country;latitude;longitude\n")

	records, err := csvfile.NewReader(path).Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
}
