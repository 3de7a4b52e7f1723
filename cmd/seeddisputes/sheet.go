package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"landrecords/internal/domain"
	"landrecords/internal/service"
)

// parseRows maps sheet rows to dispute inputs. Columns are located by the
// header names in the first row, so column order does not matter. Rows with
// no khasra number are skipped.
func parseRows(rows [][]string) ([]service.CreateDisputedLandInput, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet is empty")
	}

	col := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := col["khasra_number"]; !ok {
		return nil, fmt.Errorf("header row has no khasra_number column")
	}

	var inputs []service.CreateDisputedLandInput
	for i, row := range rows[1:] {
		get := func(name string) string {
			idx, ok := col[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		if get("khasra_number") == "" {
			continue
		}

		in := service.CreateDisputedLandInput{
			KhasraNumber:       get("khasra_number"),
			Mauza:              get("mauza"),
			Tehsil:             get("tehsil"),
			District:           get("district"),
			DisputeType:        domain.DisputeType(get("dispute_type")),
			DisputeStatus:      domain.DisputeStatus(get("dispute_status")),
			DisputeDescription: get("dispute_description"),
			LandType:           get("land_type"),
			HistoricalOwner:    get("historical_owner"),
			CaseNumber:         get("case_number"),
			FiledDate:          get("filed_date"),
			CourtJurisdiction:  get("court_jurisdiction"),
			PartitionImpact:    parseBool(get("partition_impact")),
			Latitude:           parseFloat(get("latitude")),
			Longitude:          parseFloat(get("longitude")),
			AreaKanal:          parseFloat(get("area_kanal")),
			AreaMarla:          parseFloat(get("area_marla")),
		}
		if y, err := strconv.Atoi(get("redistribution_year")); err == nil {
			in.RedistributionYear = &y
		}

		claimants, err := parseClaimants(get("claimants"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		in.Claimants = claimants

		inputs = append(inputs, in)
	}
	return inputs, nil
}

// parseClaimants accepts a JSON array or a semicolon-separated list of names.
func parseClaimants(s string) (json.RawMessage, error) {
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, "[") {
		if !json.Valid([]byte(s)) {
			return nil, fmt.Errorf("claimants is not valid JSON")
		}
		return json.RawMessage(s), nil
	}

	var claimants []map[string]string
	for _, name := range strings.Split(s, ";") {
		if name = strings.TrimSpace(name); name != "" {
			claimants = append(claimants, map[string]string{"name": name})
		}
	}
	return json.Marshal(claimants)
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}
