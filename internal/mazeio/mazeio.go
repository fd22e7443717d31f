// Package mazeio reads raw maze input: rows of 0 (free) and 1 (wall) markers,
// either as a JSON matrix or as plain text.
package mazeio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrEmptyInput = errors.New("maze input is empty")

// Parse reads a maze from r. Input starting with '[' is decoded as a JSON
// array of arrays; anything else is read as text, one row per line, with
// markers separated by spaces or commas or packed together ("0110").
// Blank lines and lines starting with '#' are skipped.
//
// Parse only tokenizes; shape checks belong to wallbreak.NewGrid.
func Parse(r io.Reader) ([][]int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read maze: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyInput
	}
	if trimmed[0] == '[' {
		return parseJSON(trimmed)
	}
	return parseText(trimmed)
}

func parseJSON(data []byte) ([][]int, error) {
	var rows [][]int
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode maze json: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	return rows, nil
}

func parseText(data []byte) ([][]int, error) {
	var rows [][]int
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan maze: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	return rows, nil
}

func parseRow(line string) ([]int, error) {
	row := make([]int, 0, len(line))
	for i, r := range line {
		switch r {
		case '0':
			row = append(row, 0)
		case '1':
			row = append(row, 1)
		case ' ', '\t', ',':
		default:
			return nil, fmt.Errorf("column %d: unexpected character %q", i+1, r)
		}
	}
	return row, nil
}
