package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticStationTable_LookupByIDAndCode(t *testing.T) {
	table := NewStaticStationTable([]Station{
		{ID: 1, Name: "Anand Vihar", Code: "ANVR", Firm: "NR"},
		{ID: 2, Name: "Ghaziabad", Code: "GZB", Firm: "NR"},
	})

	s, ok := table.ByID(2)
	assert.True(t, ok)
	assert.Equal(t, "Ghaziabad", s.Name)

	s, ok = table.ByCode("ANVR")
	assert.True(t, ok)
	assert.Equal(t, uint32(1), s.ID)

	_, ok = table.ByID(99)
	assert.False(t, ok)

	assert.Len(t, table.All(), 2)
}
