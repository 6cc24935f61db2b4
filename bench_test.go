package blockbench

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestSuite(t *testing.T, out io.Writer, cases ...string) *Suite {
	codec, err := Codec("std")
	require.NoError(t, err)

	logger := log.New()
	logger.Out = io.Discard

	return &Suite{
		Runner:     NewRunner(out),
		Codec:      codec,
		Iterations: 3,
		JSONPath:   "testdata/genesis.json",
		HexPath:    "testdata/genesis.hex",
		Cases:      cases,
		Log:        logger,
	}
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSuiteRunJSONHeight(t *testing.T) {
	require := require.New(t)

	var out bytes.Buffer
	s := newTestSuite(t, &out, "JSON")
	s.JSONPath = writeFile(t, "623200.json", `{"height":623200}`)

	sums, err := s.Run()
	require.NoError(err)
	require.Len(sums, 1)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(lines, 4)
	require.Equal("Parse JSON (3 iterations):", lines[0])
	require.Regexp(`^min: \d+\.\d{3}ms$`, lines[1])
	require.Regexp(`^average: \d+\.\d{3}ms$`, lines[2])
	require.Regexp(`^max: \d+\.\d{3}ms$`, lines[3])
}

func TestSuiteRunHexOneByteFails(t *testing.T) {
	require := require.New(t)

	var out bytes.Buffer
	s := newTestSuite(t, &out, "HEX")
	s.HexPath = writeFile(t, "623200.hex", "00\n")

	sums, err := s.Run()
	require.Error(err)
	require.Contains(err.Error(), "iteration 1")
	require.Empty(sums)
	require.Empty(out.String())
}

func TestSuiteRunMissingInput(t *testing.T) {
	require := require.New(t)

	var out bytes.Buffer
	s := newTestSuite(t, &out, "JSON", "HEX")
	s.HexPath = filepath.Join(t.TempDir(), "missing.hex")

	sums, err := s.Run()
	require.ErrorIs(err, fs.ErrNotExist)
	require.Len(sums, 1)
	require.Contains(out.String(), "Parse JSON (3 iterations):")
	require.NotContains(out.String(), "Parse HEX")
}

func TestSuiteRunDefaultOrder(t *testing.T) {
	require := require.New(t)

	var out bytes.Buffer
	s := newTestSuite(t, &out, DefaultCases...)

	sums, err := s.Run()
	require.NoError(err)
	require.Len(sums, 2)
	require.Equal("JSON", sums[0].Label)
	require.Equal("HEX", sums[1].Label)

	text := out.String()
	require.Less(strings.Index(text, "Parse JSON"), strings.Index(text, "Parse HEX"))
}

func TestSuiteRunAllCases(t *testing.T) {
	for _, codec := range CodecNames() {
		t.Run(codec, func(t *testing.T) {
			var out bytes.Buffer
			s := newTestSuite(t, &out, CaseNames()...)
			c, err := Codec(codec)
			require.NoError(t, err)
			s.Codec = c

			sums, err := s.Run()
			require.NoError(t, err)
			require.Len(t, sums, len(CaseNames()))
			for _, sum := range sums {
				require.LessOrEqual(t, sum.Min, sum.Average)
				require.LessOrEqual(t, sum.Average, sum.Max)
			}
		})
	}
}

func TestSuiteRunUnknownCaseRunsNothing(t *testing.T) {
	var out bytes.Buffer
	s := newTestSuite(t, &out, "JSON", "CBOR")

	_, err := s.Run()
	require.ErrorIs(t, err, ErrUnknownCase)
	require.Empty(t, out.String())
}

func TestSuiteRunTrimsHex(t *testing.T) {
	var out bytes.Buffer
	s := newTestSuite(t, &out, "HEX2")
	raw, err := os.ReadFile("testdata/genesis.hex")
	require.NoError(t, err)
	s.HexPath = writeFile(t, "padded.hex", "\n  "+string(raw)+"  \n\n")

	_, err = s.Run()
	require.NoError(t, err)
}
