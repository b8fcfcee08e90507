package telemetry

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// PowerModel is the nvpmodel setting recorded with every sample,
// e.g. MODE_15W_6CORE or MAXN:15W_6CORE.
type PowerModel struct {
	Mode     string
	MaxPower string
	Cores    string
}

// ParsePowerModel splits an nvp model name into mode, power budget and core
// count. Parts are separated by '_'; a ':' also separates the mode name.
func ParsePowerModel(s string) (PowerModel, error) {
	parts := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '_' || r == ':'
	})
	if len(parts) != 3 {
		return PowerModel{}, errors.Wrapf(ErrPowerModel, "%q: expected 3 parts (mode, max power, cores), got %d", s, len(parts))
	}
	return PowerModel{Mode: parts[0], MaxPower: parts[1], Cores: parts[2]}, nil
}

// MaxPowerWatts reads the power budget from the first two characters of
// MaxPower, ignoring a trailing unit letter ("15W" is 15, "7W" is 7).
func (p PowerModel) MaxPowerWatts() (float64, error) {
	prefix := p.MaxPower
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	digits := strings.TrimRightFunc(prefix, func(r rune) bool {
		return r < '0' || r > '9'
	})
	w, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrPowerModel, "max power %q is not a wattage", p.MaxPower)
	}
	return w, nil
}

// String formats the model the way the figure subtitle shows it: MODE:15W-6CORE.
func (p PowerModel) String() string {
	return p.Mode + ":" + p.MaxPower + "-" + p.Cores
}
