package loads

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightline/backend/internal/models"
)

func writeTableFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loads.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTableFile(t,
		"reference_number,origin,destination,equipment_type,rate,commodity\n"+
			"REF1,CityA,CityB,Flatbed,500,Steel\n"+
			"REF2,Dallas TX,Chicago IL,Dry Van,570,Produce\n")

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	record, err := table.Lookup("REF1")
	require.NoError(t, err)
	assert.Equal(t, models.LoadRecord{
		ReferenceNumber: "REF1",
		Origin:          "CityA",
		Destination:     "CityB",
		EquipmentType:   "Flatbed",
		Rate:            "500",
		Commodity:       "Steel",
	}, record)
}

func TestLoad_MissingFile(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "nope.csv"))

	assert.Error(t, err)
	require.NotNil(t, table, "a failed load still yields a usable empty table")
	assert.Equal(t, 0, table.Len())

	_, err = table.Lookup("REF1")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLoad_ShortRow(t *testing.T) {
	path := writeTableFile(t,
		"reference_number,origin,destination,equipment_type,rate,commodity\n"+
			"REF1,CityA,CityB,Flatbed,500,Steel\n"+
			"REF2,only,three\n")

	table, err := Load(path)

	assert.Error(t, err)
	assert.Equal(t, 0, table.Len(), "a malformed file degrades to an empty table")
}

func TestLoad_DuplicateKeyLastWins(t *testing.T) {
	path := writeTableFile(t,
		"reference_number,origin,destination,equipment_type,rate,commodity\n"+
			"REF1,CityA,CityB,Flatbed,500,Steel\n"+
			"REF1,CityC,CityD,Reefer,700,Produce\n")

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	record, err := table.Lookup("REF1")
	require.NoError(t, err)
	assert.Equal(t, "CityC", record.Origin)
	assert.Equal(t, "700", record.Rate)
}

// Commas inside field values shift the remaining columns; the format has
// no quoting. This pins down the documented limitation rather than
// endorsing it.
func TestLoad_CommaInsideValueShiftsColumns(t *testing.T) {
	path := writeTableFile(t,
		"reference_number,origin,destination,equipment_type,rate,commodity\n"+
			"REF1,Dallas, TX,Chicago,Van,500\n")

	table, err := Load(path)
	require.NoError(t, err)

	record, err := table.Lookup("REF1")
	require.NoError(t, err)
	assert.Equal(t, "Dallas", record.Origin)
	assert.Equal(t, " TX", record.Destination)
	assert.Equal(t, "500", record.Commodity)
}

func TestLoad_SkipsBlankLines(t *testing.T) {
	path := writeTableFile(t,
		"reference_number,origin,destination,equipment_type,rate,commodity\n"+
			"\n"+
			"REF1,CityA,CityB,Flatbed,500,Steel\n"+
			"\n")

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestLookup_NotFound(t *testing.T) {
	path := writeTableFile(t,
		"reference_number,origin,destination,equipment_type,rate,commodity\n"+
			"REF1,CityA,CityB,Flatbed,500,Steel\n")

	table, err := Load(path)
	require.NoError(t, err)

	_, err = table.Lookup("REF2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookup_EmptyTableIsUnavailableNotNotFound(t *testing.T) {
	path := writeTableFile(t, "reference_number,origin,destination,equipment_type,rate,commodity\n")

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())

	_, err = table.Lookup("REF1")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrNotFound)
}
