// Package catalog reads card definitions, one per line.
//
// A line is either the flat record form
//
//	["r", 1, 0, 1, 0, 1, 1, 1, 1]
//
// holding the colour code, the buyable flag, points, tier and the five gem
// costs, or an object with named fields
//
//	{"category": "r", "tier": 1, "points": 0, "cost": [0, 1, 1, 1, 1]}
//
// Blank lines and lines starting with # are skipped.
package catalog

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/minaorangina/splendor/deck"
	"github.com/minaorangina/splendor/protocol"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/multierr"
)

//go:embed cards.txt
var defaultCards []byte

// Default returns the bundled catalog: 40, 30 and 20 cards for tiers 1 to 3
// followed by 10 aristocrats
func Default() ([]*deck.Card, error) {
	return Parse(bytes.NewReader(defaultCards))
}

// Load reads a catalog file
func Load(path string) ([]*deck.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads every line of r and reports all malformed lines at once
func Parse(r io.Reader) ([]*deck.Card, error) {
	var (
		cards []*deck.Card
		errs  error
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		card, err := parseLine(line)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w", lineNo, err))
			continue
		}
		cards = append(cards, card)
	}
	if err := scanner.Err(); err != nil {
		errs = multierr.Append(errs, err)
	}

	if errs != nil {
		return nil, errs
	}
	return cards, nil
}

func parseLine(line []byte) (*deck.Card, error) {
	switch line[0] {
	case '[':
		var record []interface{}
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, protocol.Errorf(protocol.InvalidArgument, "malformed record: %v", err)
		}
		return deck.FromRecord(record)

	case '{':
		var raw map[string]interface{}
		if err := json.Unmarshal(line, &raw); err != nil {
			return nil, protocol.Errorf(protocol.InvalidArgument, "malformed record: %v", err)
		}
		fields, err := decodeFields(raw)
		if err != nil {
			return nil, err
		}
		return deck.FromFields(fields)

	default:
		return nil, protocol.Errorf(protocol.InvalidArgument, "expected a JSON array or object, got %q", line)
	}
}

func decodeFields(raw map[string]interface{}) (deck.Fields, error) {
	var fields deck.Fields
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  wholeNumberHookFunc(),
		ErrorUnused: true,
		Result:      &fields,
	})
	if err != nil {
		return deck.Fields{}, err
	}

	if err := decoder.Decode(raw); err != nil {
		return deck.Fields{}, protocol.Errorf(protocol.InvalidArgument, "%v", err)
	}
	return fields, nil
}

// wholeNumberHookFunc turns JSON numbers into ints, refusing fractions
func wholeNumberHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.Float64 || t.Kind() != reflect.Int {
			return data, nil
		}

		n := data.(float64)
		if n != math.Trunc(n) {
			return nil, fmt.Errorf("%v is not a whole number", n)
		}
		return int(n), nil
	}
}
