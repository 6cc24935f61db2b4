package blockbench

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
)

var ErrUnknownCase = errors.New("unknown case")

type InputKind int

const (
	InputJSON InputKind = iota
	InputHex
)

func (k InputKind) String() string {
	switch k {
	case InputJSON:
		return "json"
	case InputHex:
		return "hex"
	}
	return fmt.Sprintf("InputKind(%d)", int(k))
}

// Case is one benchmark: the file it reads and how it turns that file's
// content into the work being timed.
type Case struct {
	Name  string
	Input InputKind
	// Bind runs before timing starts. Only the returned Work is timed.
	Bind func(input []byte, codec JSONCodec) (Work, error)
}

var cases = []Case{
	{Name: "JSON", Input: InputJSON, Bind: bindJSON},
	{Name: "JSON-TYPED", Input: InputJSON, Bind: bindJSONTyped},
	{Name: "HEX", Input: InputHex, Bind: bindHex},
	{Name: "HEX2", Input: InputHex, Bind: bindHex2},
	{Name: "RAW", Input: InputHex, Bind: bindRaw},
}

var DefaultCases = []string{"JSON", "HEX"}

func LookupCase(name string) (Case, error) {
	for _, c := range cases {
		if c.Name == name {
			return c, nil
		}
	}
	return Case{}, fmt.Errorf("%w: %q", ErrUnknownCase, name)
}

func CaseNames() []string {
	names := make([]string, len(cases))
	for i, c := range cases {
		names[i] = c.Name
	}
	return names
}

func bindJSON(input []byte, codec JSONCodec) (Work, error) {
	return func() error {
		var v any
		return codec.Unmarshal(input, &v)
	}, nil
}

// bindJSONTyped decodes into the bitcoind getblock verbosity 2 result.
func bindJSONTyped(input []byte, codec JSONCodec) (Work, error) {
	return func() error {
		var block btcjson.GetBlockVerboseTxResult
		return codec.Unmarshal(input, &block)
	}, nil
}

// ParseBlockHex decodes hex text and parses the result as a serialized block.
func ParseBlockHex(s []byte) (*btcutil.Block, error) {
	b := make([]byte, hex.DecodedLen(len(s)))
	if _, err := hex.Decode(b, s); err != nil {
		return nil, err
	}
	return btcutil.NewBlockFromBytes(b)
}

func bindHex(input []byte, _ JSONCodec) (Work, error) {
	return func() error {
		_, err := ParseBlockHex(input)
		return err
	}, nil
}

func bindHex2(input []byte, _ JSONCodec) (Work, error) {
	return func() error {
		b, err := DecodeHexLower(input)
		if err != nil {
			return err
		}
		_, err = btcutil.NewBlockFromBytes(b)
		return err
	}, nil
}

// bindRaw decodes the hex once so only the block parse is timed.
func bindRaw(input []byte, _ JSONCodec) (Work, error) {
	b := make([]byte, hex.DecodedLen(len(input)))
	if _, err := hex.Decode(b, input); err != nil {
		return nil, err
	}

	return func() error {
		_, err := btcutil.NewBlockFromBytes(b)
		return err
	}, nil
}
