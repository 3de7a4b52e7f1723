package main

import (
	"encoding/json"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landrecords/internal/domain"
)

func TestParseRows_ByHeaderName(t *testing.T) {
	rows := [][]string{
		{"District", "khasra_number", "Tehsil", "Mauza", "dispute_type", "claimants", "partition_impact", "latitude", "redistribution_year"},
		{"Lahore", "112/4", "Raiwind", "Okara", "refugee_claim", "Ayesha Bibi; Hassan Ali", "yes", "31.52", "1948"},
		{"Multan", "", "Shujabad", "Vehari", "inheritance"},
		{"Multan", "77", "Shujabad", "Vehari", "inheritance", `[{"name":"Imran Ahmed"}]`},
	}

	inputs, err := parseRows(rows)
	require.NoError(t, err)
	require.Len(t, inputs, 2)

	first := inputs[0]
	assert.Equal(t, "112/4", first.KhasraNumber)
	assert.Equal(t, "Lahore", first.District)
	assert.Equal(t, domain.DisputeRefugeeClaim, first.DisputeType)
	assert.True(t, first.PartitionImpact)
	require.NotNil(t, first.Latitude)
	assert.InDelta(t, 31.52, *first.Latitude, 1e-9)
	require.NotNil(t, first.RedistributionYear)
	assert.Equal(t, 1948, *first.RedistributionYear)

	var names []map[string]string
	require.NoError(t, json.Unmarshal(first.Claimants, &names))
	assert.Equal(t, []map[string]string{{"name": "Ayesha Bibi"}, {"name": "Hassan Ali"}}, names)

	assert.JSONEq(t, `[{"name":"Imran Ahmed"}]`, string(inputs[1].Claimants))
	assert.Nil(t, inputs[1].Latitude)
}

func TestParseRows_MissingKhasraColumn(t *testing.T) {
	_, err := parseRows([][]string{{"district", "tehsil"}})
	assert.Error(t, err)
}

func TestParseRows_InvalidClaimantsJSON(t *testing.T) {
	_, err := parseRows([][]string{
		{"khasra_number", "claimants"},
		{"1", "[{broken"},
	})
	assert.Error(t, err)
}

func TestGenerateCases_Valid(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 3))
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := generateCases(rng, 40, now)
	require.Len(t, cases, 40)

	for _, c := range cases {
		assert.NotEmpty(t, c.KhasraNumber)
		assert.Contains(t, tehsils[c.District], c.Tehsil)
		assert.True(t, domain.ValidDisputeTypes[c.DisputeType])
		assert.True(t, domain.ValidDisputeStatuses[c.DisputeStatus])
		require.NotNil(t, c.Latitude)
		assert.InDelta(t, baseLat, *c.Latitude, latRange)
		assert.InDelta(t, baseLon, *c.Longitude, lonRange)
		assert.True(t, json.Valid(c.Claimants))

		if c.DisputeType == domain.DisputeRefugeeClaim || c.DisputeType == domain.DisputeMuhajireenClaim {
			assert.True(t, c.PartitionImpact)
		}
		if c.PartitionImpact {
			require.NotNil(t, c.RedistributionYear)
			assert.GreaterOrEqual(t, *c.RedistributionYear, 1947)
			assert.LessOrEqual(t, *c.RedistributionYear, 1951)
		}
		if c.CaseNumber != "" {
			_, err := time.Parse("2006-01-02", c.FiledDate)
			assert.NoError(t, err)
		}
	}
}

func TestGenerateCases_DeterministicForSeed(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	a := generateCases(rand.New(rand.NewPCG(42, 21)), 5, now)
	b := generateCases(rand.New(rand.NewPCG(42, 21)), 5, now)
	assert.Equal(t, a, b)
}
