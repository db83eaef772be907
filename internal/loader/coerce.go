package loader

import (
	"encoding/json"
	"strconv"
	"strings"
)

func (r row) strCol(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (r row) intCol(name string) int {
	s := r.strCol(name)
	if s == "" {
		return 0
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	// The exporter sometimes writes whole numbers as "12.0".
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func (r row) int64Col(name string) int64 {
	s := r.strCol(name)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}

func (r row) floatCol(name string) float64 {
	s := r.strCol(name)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// boolCol accepts the exporter's 0/1 flags plus textual booleans.
func (r row) boolCol(name string) bool {
	switch strings.ToLower(r.strCol(name)) {
	case "1", "true":
		return true
	}
	return false
}

// intsCol parses a JSON int array cell, e.g. the participant items column.
func (r row) intsCol(name string) []int {
	s := r.strCol(name)
	if s == "" {
		return nil
	}
	var out []int
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil
	}
	return out
}
