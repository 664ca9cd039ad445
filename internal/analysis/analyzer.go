// Package analysis fakes the damage-recognition step. Results are randomized
// placeholders with plausible shapes; there is no real inference behind them.
package analysis

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

const (
	SeverityMinor    = "minor"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

var damageTypes = map[string][]string{
	SeverityMinor:    {"scratch", "paint_chip", "small_dent"},
	SeverityModerate: {"dent", "bumper_damage", "cracked_light", "panel_damage"},
	SeveritySevere:   {"crushed_panel", "broken_glass", "frame_damage", "wheel_damage"},
}

var repairTypes = map[string][]string{
	SeverityMinor:    {"buff_and_polish", "touch_up_paint", "paintless_dent_repair"},
	SeverityModerate: {"panel_repair", "repaint", "part_replacement"},
	SeveritySevere:   {"panel_replacement", "frame_straightening", "full_repaint", "part_replacement"},
}

// cost multipliers applied to the base category ranges
var severityFactor = map[string]float64{
	SeverityMinor:    1.0,
	SeverityModerate: 2.5,
	SeveritySevere:   5.0,
}

type PhotoResult struct {
	Severity    string
	DamageType  string
	Confidence  float64
	RepairTypes []string
}

type CostEstimate struct {
	Bodywork   float64
	Paint      float64
	Parts      float64
	Labor      float64
	Total      float64
	Confidence float64
}

// Analyzer produces mocked analysis results. Safe for concurrent use.
type Analyzer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New() *Analyzer {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource lets tests pin the sequence.
func NewWithSource(src rand.Source) *Analyzer {
	return &Analyzer{rng: rand.New(src)}
}

// AnalyzePhoto returns a randomized severity/damage assessment for one photo.
func (a *Analyzer) AnalyzePhoto() PhotoResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	sev := a.pickSeverity()
	dts := damageTypes[sev]
	rts := repairTypes[sev]

	// one or two repair types, no duplicates
	picked := []string{rts[a.rng.Intn(len(rts))]}
	if a.rng.Float64() < 0.5 {
		second := rts[a.rng.Intn(len(rts))]
		if second != picked[0] {
			picked = append(picked, second)
		}
	}

	return PhotoResult{
		Severity:    sev,
		DamageType:  dts[a.rng.Intn(len(dts))],
		Confidence:  a.confidence(),
		RepairTypes: picked,
	}
}

// EstimateCosts derives a per-category cost estimate for the given severity.
// Total is always the exact sum of the four categories.
func (a *Analyzer) EstimateCosts(severity string) CostEstimate {
	a.mu.Lock()
	defer a.mu.Unlock()

	f, ok := severityFactor[severity]
	if !ok {
		f = severityFactor[SeverityMinor]
	}

	e := CostEstimate{
		Bodywork:   a.amount(150, 600, f),
		Paint:      a.amount(100, 400, f),
		Parts:      a.amount(80, 500, f),
		Labor:      a.amount(120, 450, f),
		Confidence: a.confidence(),
	}
	e.Total = round2(e.Bodywork + e.Paint + e.Parts + e.Labor)
	return e
}

// weighted: 50% minor, 35% moderate, 15% severe
func (a *Analyzer) pickSeverity() string {
	switch r := a.rng.Float64(); {
	case r < 0.50:
		return SeverityMinor
	case r < 0.85:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}

func (a *Analyzer) confidence() float64 {
	return round3(0.70 + a.rng.Float64()*0.29)
}

func (a *Analyzer) amount(lo, hi, factor float64) float64 {
	return round2((lo + a.rng.Float64()*(hi-lo)) * factor)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
