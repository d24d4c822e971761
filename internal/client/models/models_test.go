package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFilters_SetGetParams(t *testing.T) {
	var f SearchFilters
	assert.True(t, f.IsEmpty())

	require.NoError(t, f.Set(FilterCaseNumber, "0001"))
	require.NoError(t, f.Set(FilterDateTo, "2024-12-31"))
	require.NoError(t, f.Set(FilterPartyName, "   "))
	require.ErrorIs(t, f.Set("judge", "x"), ErrUnknownFilter)

	assert.Equal(t, "0001", f.Get(FilterCaseNumber))
	assert.Equal(t, "", f.Get("judge"))
	assert.False(t, f.IsEmpty())
	assert.Equal(t, map[string]string{"case_number": "0001", "date_to": "2024-12-31"}, f.Params())
}

func TestCase_DecodesNullables(t *testing.T) {
	raw := `{"id":1,"case_number":"N","status":"open","judge":null,"next_hearing":null,"filing_date":"2024-01-15T00:00:00"}`
	var c Case
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	assert.Empty(t, c.Judge)
	assert.True(t, c.NextHearing.IsZero())
	assert.Equal(t, "15/01/2024", c.FilingDate.DisplayDate())
	assert.Equal(t, "-", c.NextHearing.DisplayDate())
}

func TestCatalog(t *testing.T) {
	c := Catalog{Forms: map[string][]Form{
		"probate": {{ID: 4, Title: "Inventário"}},
		"civil":   {{ID: 1, Title: "Petição Inicial"}, {ID: 2, Title: "Contestação"}},
	}}

	assert.Equal(t, []string{"civil", "probate"}, c.Categories())

	f, ok := c.Find(2)
	require.True(t, ok)
	assert.Equal(t, "Contestação", f.Title)

	_, ok = c.Find(99)
	assert.False(t, ok)
}

func TestCategoryInfo(t *testing.T) {
	cats := []FormCategory{{Value: "civil", Label: "Direito Civil", Description: "d"}}
	assert.Equal(t, "Direito Civil", CategoryInfo(cats, "civil").Label)
	assert.Equal(t, FormCategory{Value: "labor", Label: "labor"}, CategoryInfo(cats, "labor"))
}

func TestHearingFilters_Params(t *testing.T) {
	assert.Empty(t, HearingFilters{}.Params())
	assert.Equal(t, map[string]string{"date_from": "a", "date_to": "b", "courtroom": "c"},
		HearingFilters{DateFrom: "a", DateTo: "b", Courtroom: "c"}.Params())
}

func TestBadges(t *testing.T) {
	tests := []struct {
		code string
		want Badge
	}{
		{"open", Badge{Label: "Aberto", Variant: "default"}},
		{"pending", Badge{Label: "Pendente", Variant: "secondary"}},
		{"closed", Badge{Label: "Encerrado", Variant: "outline"}},
		{"suspended", Badge{Label: "Suspenso", Variant: "destructive"}},
		{"archived", Badge{Label: "archived", Variant: "default"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusBadge(tt.code), tt.code)
	}

	assert.Equal(t, Badge{Label: "Família", Color: "green"}, TypeBadge("family"))
	assert.Equal(t, Badge{Label: "Sucessões", Color: "purple"}, TypeBadge("probate"))
	assert.Equal(t, Badge{Label: "labor", Color: "gray"}, TypeBadge("labor"))
}
