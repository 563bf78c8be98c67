// SPDX-License-Identifier: MIT
package output_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lae/matrix"
	"github.com/katalvlaran/lae/output"
)

func TestEncodeResult(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{11, 22}, {33, 44.5}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, output.EncodeResult(&buf, m))
	require.JSONEq(t, `{"result": [[11, 22], [33, 44.5]]}`, buf.String())
}

func TestEncodeResult_Empty(t *testing.T) {
	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, output.EncodeResult(&buf, m))
	require.JSONEq(t, `{"result": []}`, buf.String())

	require.ErrorIs(t, output.EncodeResult(&buf, nil), output.ErrNilResult)
}

func TestEncodeError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.EncodeError(&buf, `Parse error: bad "quote"`))
	require.JSONEq(t, `{"error": "Parse error: bad \"quote\""}`, buf.String())
}

func TestWriteResultAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	m, err := matrix.Identity(2)
	require.NoError(t, err)

	require.NoError(t, output.WriteResult(path, m))
	var doc struct {
		Result [][]float64 `json:"result"`
	}
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, doc.Result)

	// Overwrites the previous artifact entirely.
	require.NoError(t, output.WriteError(path, "Runtime error: boom"))
	raw, err = os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, `{"error": "Runtime error: boom"}`, string(raw))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.True(t, info.Mode().IsRegular())
}

func TestWrite_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.json")
	require.Error(t, output.WriteError(path, "x"))
	require.ErrorIs(t, output.WriteResult(path, nil), output.ErrNilResult)
}
