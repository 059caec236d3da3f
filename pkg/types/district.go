package types

import (
	"fmt"
	"strings"
)

// District scopes report queries. The set is closed; DistrictAll is the
// "no district predicate" sentinel.
type District string

const (
	DistrictArau        District = "Arau"
	DistrictKangar      District = "Kangar"
	DistrictPadangBesar District = "Padang Besar"

	DistrictAll District = "ALL"
)

var districts = []District{
	DistrictArau,
	DistrictKangar,
	DistrictPadangBesar,
}

// Districts returns the closed set in picker order, without the ALL sentinel.
func Districts() []District {
	out := make([]District, len(districts))
	copy(out, districts)
	return out
}

// ParseDistrict accepts a district name or ALL, ignoring case and
// surrounding whitespace.
func ParseDistrict(s string) (District, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, string(DistrictAll)) {
		return DistrictAll, nil
	}

	for _, d := range districts {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownDistrict, s)
}

func (d District) IsAll() bool {
	return d == DistrictAll
}

func (d District) Valid() bool {
	if d == DistrictAll {
		return true
	}
	for _, known := range districts {
		if d == known {
			return true
		}
	}
	return false
}

func (d District) String() string {
	return string(d)
}
