package blockbench

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	gojson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
)

var ErrUnknownCodec = errors.New("unknown json codec")

// JSONCodec is the JSON decoder the JSON cases are timed with.
type JSONCodec interface {
	Name() string
	Unmarshal(data []byte, v any) error
}

type stdCodec struct{}

func (stdCodec) Name() string { return "std" }

func (stdCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

type jsoniterCodec struct {
	api jsoniter.API
}

func (jsoniterCodec) Name() string { return "jsoniter" }

func (c jsoniterCodec) Unmarshal(data []byte, v any) error { return c.api.Unmarshal(data, v) }

type goccyCodec struct{}

func (goccyCodec) Name() string { return "goccy" }

func (goccyCodec) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

var codecs = map[string]JSONCodec{
	"std":      stdCodec{},
	"jsoniter": jsoniterCodec{api: jsoniter.ConfigCompatibleWithStandardLibrary},
	"goccy":    goccyCodec{},
}

func Codec(name string) (JSONCodec, error) {
	c, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return c, nil
}

func CodecNames() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
