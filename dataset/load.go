// Copyright 2025 The HClust Authors
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jcodagnone/hclust/spatial"
)

const countPrefix = "count="

// LoadFile reads the points file at path. See Load for the format.
func LoadFile(path string) ([]spatial.Point, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, &Error{Type: ErrorTypeOpen, Path: path, Message: "opening points file", Err: err}
	}
	defer f.Close()

	points, err := Load(f)
	if err != nil {
		var dsErr *Error
		if errors.As(err, &dsErr) && dsErr.Path == "" {
			dsErr.Path = path
		}

		return nil, err
	}

	return points, nil
}

// Load parses a points file:
//
//	count=3
//	1 0 0
//	2 1.5 0
//	3 0 1
//
// The header declares how many records follow. Each record holds an integer
// id and two coordinates. Blank lines are skipped and anything after the
// declared records is ignored.
func Load(r io.Reader) ([]spatial.Point, error) {
	scanner := bufio.NewScanner(r)
	line := 0

	next := func() (string, bool) {
		for scanner.Scan() {
			line++
			if text := strings.TrimSpace(scanner.Text()); text != "" {
				return text, true
			}
		}

		return "", false
	}

	header, ok := next()
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, scanError(line, err)
		}

		return nil, parseError(0, nil, "missing %q header", countPrefix+"N")
	}

	count, err := parseHeader(header)
	if err != nil {
		return nil, parseError(line, err, "invalid header %q", header)
	}

	points := make([]spatial.Point, 0, count)

	for len(points) < count {
		text, ok := next()
		if !ok {
			break
		}

		p, err := parseRecord(text)
		if err != nil {
			return nil, parseError(line, err, "invalid record %q", text)
		}

		points = append(points, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, scanError(line, err)
	}

	if len(points) < count {
		return nil, parseError(line, nil, "expected %d records, found %d", count, len(points))
	}

	return points, nil
}

func parseHeader(text string) (int, error) {
	rest, ok := strings.CutPrefix(text, countPrefix)
	if !ok {
		return 0, fmt.Errorf("expected %q prefix", countPrefix)
	}

	count, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, err
	}

	if count < 0 {
		return 0, fmt.Errorf("negative count %d", count)
	}

	return count, nil
}

func parseRecord(text string) (spatial.Point, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return spatial.Point{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return spatial.Point{}, fmt.Errorf("id: %w", err)
	}

	x, err := parseCoord(fields[1])
	if err != nil {
		return spatial.Point{}, fmt.Errorf("x: %w", err)
	}

	y, err := parseCoord(fields[2])
	if err != nil {
		return spatial.Point{}, fmt.Errorf("y: %w", err)
	}

	return spatial.Point{ID: id, X: x, Y: y}, nil
}

func parseCoord(field string) (float32, error) {
	v, err := strconv.ParseFloat(field, 32)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", field)
	}

	return float32(v), nil
}

// scanError classifies a scanner failure: an oversized line is malformed
// input, anything else is a read error.
func scanError(line int, err error) *Error {
	if errors.Is(err, bufio.ErrTooLong) {
		return parseError(line+1, err, "line too long")
	}

	return &Error{Type: ErrorTypeOpen, Line: line, Message: "reading points", Err: err}
}
