package domain

import (
	"math"
	"sort"
)

// MetricReference is the population mean and standard deviation of one metric.
type MetricReference struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// ReferenceEntry is the population reference for one region.
type ReferenceEntry struct {
	Thickness   MetricReference `json:"thickness"`
	SurfaceArea MetricReference `json:"surface_area"`
	Volume      MetricReference `json:"volume"`
}

// For returns the reference of metric m.
func (e ReferenceEntry) For(m Metric) MetricReference {
	switch m {
	case THICKNESS:
		return e.Thickness
	case SURFACE_AREA:
		return e.SurfaceArea
	default:
		return e.Volume
	}
}

// Mean returns a measurement sitting exactly on the reference mean.
func (e ReferenceEntry) Mean() RegionMeasurement {
	return RegionMeasurement{
		Thickness:   e.Thickness.Mean,
		SurfaceArea: e.SurfaceArea.Mean,
		Volume:      e.Volume.Mean,
	}
}

// Shifted returns a measurement sd standard deviations away from the mean
// on all three metrics.
func (e ReferenceEntry) Shifted(sd float64) RegionMeasurement {
	return RegionMeasurement{
		Thickness:   e.Thickness.Mean + sd*e.Thickness.StdDev,
		SurfaceArea: e.SurfaceArea.Mean + sd*e.SurfaceArea.StdDev,
		Volume:      e.Volume.Mean + sd*e.Volume.StdDev,
	}
}

// ReferenceTable maps region name to its population reference.
type ReferenceTable map[string]ReferenceEntry

// Lookup returns the entry for region.
func (t ReferenceTable) Lookup(region string) (ReferenceEntry, bool) {
	e, ok := t[region]
	return e, ok
}

// Regions returns the region names in sorted order.
func (t ReferenceTable) Regions() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every standard deviation is a positive finite number.
func (t ReferenceTable) Validate() error {
	for region, e := range t {
		for _, m := range []Metric{THICKNESS, SURFACE_AREA, VOLUME} {
			ref := e.For(m)
			if !(ref.StdDev > 0) || math.IsInf(ref.StdDev, 0) || !isFinite(ref.Mean) {
				return NewValidationError(region, "reference standard deviation must be positive", ref)
			}
		}
	}
	return nil
}

func ref(tMean, tSD, aMean, aSD, vMean, vSD float64) ReferenceEntry {
	return ReferenceEntry{
		Thickness:   MetricReference{Mean: tMean, StdDev: tSD},
		SurfaceArea: MetricReference{Mean: aMean, StdDev: aSD},
		Volume:      MetricReference{Mean: vMean, StdDev: vSD},
	}
}

// AdultMaleReference is the adult male reference cohort: thickness in mm,
// surface area in mm² and volume in mm³ per DKT region. The table is shared
// read-only; callers must not mutate it.
var AdultMaleReference = ReferenceTable{
	"precentral":               ref(2.65, 0.18, 5400, 650, 16500, 2200),
	"postcentral":              ref(2.15, 0.16, 5200, 600, 13500, 1800),
	"paracentral":              ref(2.45, 0.17, 1700, 280, 4800, 700),
	"pericalcarine":            ref(1.55, 0.14, 1900, 320, 2400, 400),
	"cuneus":                   ref(1.95, 0.15, 2300, 380, 4600, 650),
	"lingual":                  ref(2.05, 0.15, 3800, 500, 8200, 1100),
	"entorhinal":               ref(3.20, 0.35, 480, 100, 1600, 350),
	"parahippocampal":          ref(2.75, 0.22, 700, 120, 2200, 380),
	"medialorbitofrontal":      ref(2.45, 0.20, 1800, 300, 5000, 750),
	"superiortemporal":         ref(2.85, 0.20, 5800, 700, 19000, 2500),
	"parsopercularis":          ref(2.55, 0.16, 1600, 250, 4500, 650),
	"parstriangularis":         ref(2.40, 0.17, 1550, 280, 4000, 600),
	"middletemporal":           ref(2.85, 0.19, 5000, 650, 16000, 2200),
	"fusiform":                 ref(2.70, 0.18, 3300, 450, 9500, 1300),
	"supramarginal":            ref(2.60, 0.17, 3800, 500, 11500, 1600),
	"inferiorparietal":         ref(2.50, 0.16, 5500, 700, 15500, 2100),
	"rostralanteriorcingulate": ref(2.85, 0.22, 1100, 200, 3500, 550),
	"insula":                   ref(3.05, 0.22, 2500, 350, 7800, 1000),
	"posteriorcingulate":       ref(2.45, 0.20, 1500, 250, 4000, 600),
	"superiorfrontal":          ref(2.75, 0.18, 9500, 1200, 30000, 4000),
	"rostralmiddlefrontal":     ref(2.40, 0.17, 4700, 600, 13000, 1800),
	"caudalmiddlefrontal":      ref(2.65, 0.17, 2600, 400, 7500, 1000),
	"superiorparietal":         ref(2.25, 0.15, 5200, 650, 13000, 1700),
	"precuneus":                ref(2.40, 0.16, 4600, 580, 12000, 1600),
	"lateraloccipital":         ref(2.20, 0.16, 6300, 800, 15000, 2000),
	"lateralorbitofrontal":     ref(2.55, 0.20, 3500, 480, 9800, 1400),
	"inferiortemporal":         ref(2.80, 0.20, 3900, 520, 12500, 1700),
}
