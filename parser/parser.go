// SPDX-License-Identifier: MIT

package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lae/expr"
	"github.com/katalvlaran/lae/matrix"
)

const (
	keyOperator = "operator"
	keyOperands = "operands"
	rootPath    = "root"
)

// ParseFile reads path as YAML (.yaml, .yml) or JSON (anything else).
func ParseFile(path string) (*expr.Expr, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errorf(err, "open input")
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return Parse(f)
	}
}

// Parse decodes one JSON document from r.
// Errors: *ParseError.
func Parse(r io.Reader) (*expr.Expr, error) {
	dec := json.NewDecoder(r)
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errorf(nil, "empty input")
		}
		return nil, errorf(err, "invalid JSON")
	}
	if dec.More() {
		return nil, errorf(nil, "invalid JSON: trailing data after document")
	}

	return build(doc, rootPath)
}

// ParseYAML decodes one YAML document from r.
// Errors: *ParseError.
func ParseYAML(r io.Reader) (*expr.Expr, error) {
	var doc interface{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errorf(nil, "empty input")
		}
		return nil, errorf(err, "invalid YAML")
	}

	return build(doc, rootPath)
}

// build converts a decoded generic document into an expression.
func build(v interface{}, path string) (*expr.Expr, error) {
	switch n := v.(type) {
	case map[string]interface{}:
		return buildOperator(n, path)
	case []interface{}:
		m, err := buildMatrix(n, path)
		if err != nil {
			return nil, err
		}
		return expr.Leaf(m), nil
	case nil:
		return nil, errorf(nil, "%s: null node", path)
	default:
		return nil, errorf(nil, "%s: expected operator object or matrix, got %T", path, v)
	}
}

func buildOperator(obj map[string]interface{}, path string) (*expr.Expr, error) {
	for k := range obj {
		if k != keyOperator && k != keyOperands {
			return nil, errorf(nil, "%s: unknown field %q", path, k)
		}
	}
	sym, ok := obj[keyOperator].(string)
	if !ok {
		return nil, errorf(nil, "%s: missing or non-string %q", path, keyOperator)
	}
	op, err := expr.ParseOp(sym)
	if err != nil {
		return nil, errorf(err, "%s", path)
	}
	raw, ok := obj[keyOperands].([]interface{})
	if !ok {
		return nil, errorf(nil, "%s: missing or non-array %q", path, keyOperands)
	}
	if len(raw) == 0 {
		return nil, errorf(expr.ErrArity, "%s: %s has no operands", path, op)
	}

	operands := make([]*expr.Expr, len(raw))
	for i, child := range raw {
		if operands[i], err = build(child, fmt.Sprintf("%s.operands[%d]", path, i)); err != nil {
			return nil, err
		}
	}
	e := expr.Apply(op, operands...)
	if err = e.Validate(); err != nil {
		return nil, errorf(err, "%s", path)
	}

	return e, nil
}

// buildMatrix accepts [] (0x0), [[], ...] (r x 0) and rectangular number grids.
func buildMatrix(rows []interface{}, path string) (*matrix.Dense, error) {
	grid := make([][]float64, len(rows))
	for i, r := range rows {
		cells, ok := r.([]interface{})
		if !ok {
			return nil, errorf(nil, "%s[%d]: matrix row must be an array, got %T", path, i, r)
		}
		grid[i] = make([]float64, len(cells))
		for j, c := range cells {
			x, ok := number(c)
			if !ok {
				return nil, errorf(nil, "%s[%d][%d]: expected number, got %T", path, i, j, c)
			}
			grid[i][j] = x
		}
	}
	m, err := matrix.NewDenseFromRows(grid)
	if err != nil {
		return nil, errorf(err, "%s", path)
	}

	return m, nil
}

// number accepts the numeric kinds produced by encoding/json and yaml.v3.
func number(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
