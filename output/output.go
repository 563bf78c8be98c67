// SPDX-License-Identifier: MIT

// Package output writes the result artifact: {"result": [[...]]} on success,
// {"error": "..."} on failure.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lae/matrix"
)

// ErrNilResult is returned when a nil matrix is passed as a result.
var ErrNilResult = errors.New("output: nil result")

// filePerm is the mode of written artifacts.
const filePerm = 0o644

type resultDoc struct {
	Result [][]float64 `json:"result"`
}

type errorDoc struct {
	Error string `json:"error"`
}

// EncodeResult writes {"result": rows} to w. An empty matrix encodes as [].
func EncodeResult(w io.Writer, m *matrix.Dense) error {
	if m == nil {
		return ErrNilResult
	}

	return encode(w, resultDoc{Result: m.ToRows()})
}

// EncodeError writes {"error": msg} to w.
func EncodeError(w io.Writer, msg string) error {
	return encode(w, errorDoc{Error: msg})
}

// WriteResult writes the success artifact to path, replacing any existing file.
// The parent directory must exist.
func WriteResult(path string, m *matrix.Dense) error {
	if m == nil {
		return ErrNilResult
	}

	return writeFile(path, func(w io.Writer) error { return EncodeResult(w, m) })
}

// WriteError writes the failure artifact to path.
func WriteError(path, msg string) error {
	return writeFile(path, func(w io.Writer) error { return EncodeError(w, msg) })
}

func encode(w io.Writer, doc interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("output: encode: %w", err)
	}

	return nil
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("output: close: %w", cerr)
		}
	}()

	return fn(f)
}
