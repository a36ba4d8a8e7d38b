/*
Package game
File: mechanics.go
Description:
    Catalog lookups and the small rule formulas shared by the decision
    operations and the year transition: ratios, congestion penalties,
    peak-hour runway movements and the quality clamp.
*/

package game

import (
	"math"
	"strings"
)

// GetProject returns the catalog entry for a project name, or nil.
func GetProject(name string) *ProjectSpec {
	for _, p := range Projects {
		if strings.EqualFold(p.Name, name) {
			return &p
		}
	}
	return nil
}

// GetCampaign returns the catalog entry for a campaign code, or nil.
func GetCampaign(code string) *Campaign {
	for _, c := range Campaigns {
		if strings.EqualFold(c.Code, code) {
			return &c
		}
	}
	return nil
}

// projectKindFor derives a project's terminal effect from its name.
// Anything that is not the hangar or the retail expansion adds passenger capacity.
func projectKindFor(name string) ProjectKind {
	switch name {
	case ProjectCargoHangar:
		return ProjectCargoVolume
	case ProjectRetailExpansion:
		return ProjectRetailSpace
	default:
		return ProjectPaxCapacity
	}
}

// ratio divides n by d, returning 0 when d is zero.
func ratio(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return n / d
}

// peakHourMovements converts annual passengers into peak-hour runway movements.
// Formula: (Traffic / PaxPerMovement / 365) * PeakHourFactor
func peakHourMovements(traffic, paxPerMovement, peakHourFactor float64) float64 {
	return ratio(traffic, paxPerMovement) / 365 * peakHourFactor
}

// congestionPenalty is the quality multiplier for a utilization level.
// Above 80% utilization every point costs two points of quality, down to the floor.
func congestionPenalty(utilization float64) float64 {
	if utilization <= CongestionThreshold {
		return 1
	}
	return math.Max(QualityFloor, 1-(utilization-CongestionThreshold)*2)
}

// clampQuality keeps a quality factor inside [QualityFloor, QualityCeiling].
func clampQuality(q float64) float64 {
	return math.Max(QualityFloor, math.Min(QualityCeiling, q))
}
