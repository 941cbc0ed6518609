package app

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/m-zajac/avatargrid/internal/graph"
)

// ParseGraphParams parses size and columns request values without bounding them.
// Empty values are replaced with defaults. Zero columns and values overflowing int are rejected.
func ParseGraphParams(size, columns string) (graph.Params, error) {
	p := graph.Params{
		Size:    graph.DefaultSize,
		Columns: graph.DefaultColumns,
	}

	if size != "" {
		v, err := parseLeadingInt(size)
		if err != nil {
			return p, InvalidRequestError(fmt.Sprintf("invalid size value %q", size))
		}
		p.Size = v
	}
	if columns != "" {
		v, err := parseLeadingInt(columns)
		if err != nil {
			return p, InvalidRequestError(fmt.Sprintf("invalid columns value %q", columns))
		}
		if v == 0 {
			return p, InvalidRequestError("columns must not be zero")
		}
		p.Columns = v
	}

	return p, nil
}

// ClampGraphParams parses size and columns request values and bounds them to safe ranges.
// Values that can't be parsed, or are zero, fall back to defaults. Values overflowing int
// are clamped like any other out of bounds value.
func ClampGraphParams(size, columns string) graph.Params {
	p := graph.Params{
		Size:    graph.DefaultSize,
		Columns: graph.DefaultColumns,
	}
	if v, ok := parseClampable(size); ok {
		p.Size = v
	}
	if v, ok := parseClampable(columns); ok {
		p.Columns = v
	}

	return p.Clamp()
}

// parseClampable returns non zero leading integer of s, saturated to int range.
func parseClampable(s string) (int, bool) {
	v, err := parseLeadingInt(s)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	return v, v != 0
}

// parseLeadingInt parses optionally signed decimal prefix of s, ignoring leading whitespace
// and anything after the digits.
// On overflow it returns math.MaxInt or math.MinInt with an error wrapping strconv.ErrRange.
func parseLeadingInt(s string) (int, error) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, strconv.ErrSyntax
	}

	v, err := strconv.Atoi(s[:i])
	if errors.Is(err, strconv.ErrRange) {
		if s[0] == '-' {
			return math.MinInt, err
		}
		return math.MaxInt, err
	}

	return v, err
}
