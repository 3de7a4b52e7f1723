package main

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"landrecords/internal/domain"
	"landrecords/internal/service"
)

var districts = []string{"Lahore", "Faisalabad", "Multan", "Rawalpindi", "Gujranwala", "Sialkot", "Bahawalpur"}

var tehsils = map[string][]string{
	"Lahore":     {"Model Town", "Gulberg", "Raiwind", "Shahdara"},
	"Faisalabad": {"Jaranwala", "Samundri", "Tandlianwala"},
	"Multan":     {"Shujabad", "Jalalpur Pirwala", "Multan City"},
	"Rawalpindi": {"Taxila", "Gujar Khan", "Kallar Syedan"},
	"Gujranwala": {"Wazirabad", "Kamoke", "Nowshera Virkan"},
	"Sialkot":    {"Daska", "Pasrur", "Sambrial"},
	"Bahawalpur": {"Hasilpur", "Ahmadpur East", "Yazman"},
}

var mauzas = []string{
	"Chak No. 123", "Khanewal", "Jhumra", "Kamalia", "Mian Channu",
	"Kot Addu", "Pakpattan", "Vehari", "Sahiwal", "Okara",
}

var historicalOwners = []string{
	"Raja Muhammad Khan", "Sardar Singh", "Lala Ram Dass",
	"Malik Ahmed Ali", "Chaudhry Abdul Hameed", "Rao Bahadur Singh",
}

var claimantNames = []string{
	"Muhammad Ali Khan", "Fatima Begum", "Ahmed Hassan",
	"Ayesha Bibi", "Abdul Rahman", "Zainab Malik",
	"Hassan Ali", "Rukhsana Khatoon", "Imran Ahmed",
}

var relationships = []string{"Original Owner", "Heir", "Purchaser", "Refugee Claimant", "Legal Heir"}

var disputeTypes = []domain.DisputeType{
	domain.DisputeRefugeeClaim,
	domain.DisputeMuhajireenClaim,
	domain.DisputeRedistributed,
	domain.DisputeOverlappingOwnership,
	domain.DisputeInheritance,
}

var sampleStatuses = []domain.DisputeStatus{"pending", "under_investigation", "court_hearing", domain.DisputeStatusResolved, "rejected"}

// Map points scatter around the centre of Pakistan.
const (
	baseLat  = 30.3753
	baseLon  = 69.3451
	latRange = 5.0
	lonRange = 5.0
)

type claimant struct {
	Name         string `json:"name"`
	CNIC         string `json:"cnic"`
	Contact      string `json:"contact"`
	Relationship string `json:"relationship"`
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// between returns a random int in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

func generateCases(rng *rand.Rand, n int, now time.Time) []service.CreateDisputedLandInput {
	out := make([]service.CreateDisputedLandInput, 0, n)
	for range n {
		out = append(out, generateCase(rng, now))
	}
	return out
}

func generateCase(rng *rand.Rand, now time.Time) service.CreateDisputedLandInput {
	district := pick(rng, districts)
	disputeType := pick(rng, disputeTypes)
	status := pick(rng, sampleStatuses)

	// Refugee and muhajireen claims always trace back to partition.
	partition := disputeType == domain.DisputeRefugeeClaim ||
		disputeType == domain.DisputeMuhajireenClaim ||
		rng.Float64() < 0.3

	lat := baseLat + (rng.Float64()*2-1)*latRange
	lon := baseLon + (rng.Float64()*2-1)*lonRange
	kanal := float64(between(rng, 1, 50))
	marla := float64(between(rng, 0, 19))

	claimants := make([]claimant, between(rng, 2, 4))
	for i := range claimants {
		claimants[i] = claimant{
			Name:         pick(rng, claimantNames),
			CNIC:         fmt.Sprintf("%d-%d-%d", between(rng, 10000, 99999), between(rng, 1000000, 9999999), between(rng, 1, 9)),
			Contact:      fmt.Sprintf("+92-3%d-%d", between(rng, 10, 99), between(rng, 1000000, 9999999)),
			Relationship: pick(rng, relationships),
		}
	}
	claimantsJSON, _ := json.Marshal(claimants)

	desc := fmt.Sprintf("Dispute regarding %s with multiple claimants. ", strings.ReplaceAll(string(disputeType), "_", " "))
	if partition {
		desc += "Affected by 1947 partition. "
	}
	desc += "Requires legal resolution."

	in := service.CreateDisputedLandInput{
		KhasraNumber:       fmt.Sprintf("%d/%d", between(rng, 1, 999), between(rng, 1, 50)),
		Mauza:              pick(rng, mauzas),
		Tehsil:             pick(rng, tehsils[district]),
		District:           district,
		DisputeType:        disputeType,
		DisputeStatus:      status,
		DisputeDescription: desc,
		Claimants:          claimantsJSON,
		Latitude:           &lat,
		Longitude:          &lon,
		AreaKanal:          &kanal,
		AreaMarla:          &marla,
		LandType:           "agricultural",
		PartitionImpact:    partition,
	}

	if partition {
		in.HistoricalOwner = pick(rng, historicalOwners)
		year := between(rng, 1947, 1951)
		in.RedistributionYear = &year
	}

	if slices.Contains([]domain.DisputeStatus{"court_hearing", domain.DisputeStatusResolved, "rejected"}, status) {
		in.CaseNumber = fmt.Sprintf("CL-%d/20%d", between(rng, 1000, 9999), between(rng, 10, 23))
		in.CourtJurisdiction = "Civil Court " + district
		in.FiledDate = now.AddDate(0, 0, -between(rng, 30, 1000)).Format("2006-01-02")
	}

	return in
}
