package logistics

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/retailops/backend/internal/domain/shared"
)

type fieldKind int

const (
	kindDays fieldKind = iota
	kindPositive
	kindUnit
)

// configField binds a patch key to its rule and its slot in ConfigPatch
type configField struct {
	key      string
	kind     fieldKind
	setInt   func(p *ConfigPatch, v int)
	setFloat func(p *ConfigPatch, v float64)
}

// configFields is ordered; the first failing field determines the message.
var configFields = []configField{
	{key: "windowDaysShort", kind: kindDays, setInt: func(p *ConfigPatch, v int) { p.WindowDaysShort = &v }},
	{key: "windowDaysLong", kind: kindDays, setInt: func(p *ConfigPatch, v int) { p.WindowDaysLong = &v }},
	{key: "forecastWeightShort", kind: kindUnit, setFloat: func(p *ConfigPatch, v float64) { p.ForecastWeightShort = &v }},
	{key: "forecastWeightLong", kind: kindUnit, setFloat: func(p *ConfigPatch, v float64) { p.ForecastWeightLong = &v }},
	{key: "safetyStockStatsDays", kind: kindDays, setInt: func(p *ConfigPatch, v int) { p.SafetyStockStatsDays = &v }},
	{key: "serviceLevelZ", kind: kindPositive, setFloat: func(p *ConfigPatch, v float64) { p.ServiceLevelZ = &v }},
	{key: "reorderCoverageDays", kind: kindDays, setInt: func(p *ConfigPatch, v int) { p.ReorderCoverageDays = &v }},
	{key: "riskHorizonDays", kind: kindDays, setInt: func(p *ConfigPatch, v int) { p.RiskHorizonDays = &v }},
	{key: "deadStockWindowDays", kind: kindDays, setInt: func(p *ConfigPatch, v int) { p.DeadStockWindowDays = &v }},
	{key: "deadStockDropMin", kind: kindUnit, setFloat: func(p *ConfigPatch, v float64) { p.DeadStockDropMin = &v }},
	{key: "deadStockDropMax", kind: kindUnit, setFloat: func(p *ConfigPatch, v float64) { p.DeadStockDropMax = &v }},
}

// ParseConfigPatch validates a decoded JSON body field by field. Checks run in
// stages and every field passes a stage before the next stage starts:
//  1. at least one recognized, non-null field
//  2. every present field is a finite number
//  3. day counts are positive integers
//  4. serviceLevelZ is positive
//  5. weights and drop bounds lie in [0, 1]
//
// Cross-field invariants need the persisted record and are checked by ValidateAgainst.
func ParseConfigPatch(body map[string]any) (ConfigPatch, error) {
	present := make(map[string]float64, len(configFields))
	var raw []configField
	for _, f := range configFields {
		if v, ok := body[f.key]; ok && v != nil {
			raw = append(raw, f)
		}
	}
	if len(raw) == 0 {
		return ConfigPatch{}, ErrConfigEmptyPatch
	}

	for _, f := range raw {
		n, ok := finiteNumber(body[f.key])
		if !ok {
			return ConfigPatch{}, fieldError(f.key, "must be a number")
		}
		present[f.key] = n
	}

	for _, f := range raw {
		if f.kind != kindDays {
			continue
		}
		n := present[f.key]
		if n != math.Trunc(n) {
			return ConfigPatch{}, fieldError(f.key, "must be an integer")
		}
		if n <= 0 {
			return ConfigPatch{}, fieldError(f.key, "must be > 0")
		}
		if n > math.MaxInt32 {
			return ConfigPatch{}, fieldError(f.key, fmt.Sprintf("must be <= %d", math.MaxInt32))
		}
	}

	for _, f := range raw {
		if f.kind == kindPositive && present[f.key] <= 0 {
			return ConfigPatch{}, fieldError(f.key, "must be > 0")
		}
	}

	for _, f := range raw {
		if f.kind == kindUnit {
			if n := present[f.key]; n < 0 || n > 1 {
				return ConfigPatch{}, fieldError(f.key, "must be between 0 and 1")
			}
		}
	}

	var patch ConfigPatch
	for _, f := range raw {
		n := present[f.key]
		if f.setInt != nil {
			f.setInt(&patch, int(n))
		} else {
			f.setFloat(&patch, n)
		}
	}
	return patch, nil
}

func fieldError(key, rule string) error {
	return shared.NewValidationError(key + " " + rule)
}

func finiteNumber(v any) (float64, bool) {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case float32:
		n = float64(t)
	case int:
		n = float64(t)
	case int64:
		n = float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
