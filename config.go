package blockbench

import (
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	JSONFileKey   = "json-file"
	HexFileKey    = "hex-file"
	IterationsKey = "iterations"
	CasesKey      = "cases"
	JSONCodecKey  = "json-codec"
	LogLevelKey   = "log-level"
	ConfigFileKey = "config-file"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	JSONPath   string
	HexPath    string
	Iterations int
	Cases      []string
	JSONCodec  string
	LogLevel   string
}

// BuildFlagSet returns the flags blockbench accepts. The defaults reproduce
// a run over block 623200 with 100 iterations of the JSON and HEX cases.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("blockbench", pflag.ContinueOnError)
	fs.String(JSONFileKey, "./blocks/623200.json", "JSON block file (bitcoind getblock verbosity 2)")
	fs.String(HexFileKey, "./blocks/623200.hex", "Hex-encoded serialized block file")
	fs.Int(IterationsKey, 100, "Iterations per case")
	fs.String(CasesKey, strings.Join(DefaultCases, ","), "Cases to run, comma separated. one of "+strings.Join(CaseNames(), ", "))
	fs.String(JSONCodecKey, "std", "JSON codec. one of "+strings.Join(CodecNames(), ", "))
	fs.String(LogLevelKey, "info", "Log level")
	fs.String(ConfigFileKey, "", "Optional config file with the same keys as the flags. cases is a comma separated string there too")
	return fs
}

// GetViper parses args into fs and binds the result, then reads the config
// file if one was given. Flags set on the command line win over the file.
func GetViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if path := v.GetString(ConfigFileKey); path != "" {
		v.SetConfigFile(os.ExpandEnv(path))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		JSONPath:   v.GetString(JSONFileKey),
		HexPath:    v.GetString(HexFileKey),
		Iterations: v.GetInt(IterationsKey),
		Cases:      splitList(v.GetString(CasesKey)),
		JSONCodec:  v.GetString(JSONCodecKey),
		LogLevel:   v.GetString(LogLevelKey),
	}

	if cfg.Iterations < 1 {
		return Config{}, fmt.Errorf("%w: %s is %d, must be at least 1", ErrInvalidConfig, IterationsKey, cfg.Iterations)
	}
	if len(cfg.Cases) == 0 {
		return Config{}, fmt.Errorf("%w: %s is empty", ErrInvalidConfig, CasesKey)
	}

	needs := map[InputKind]bool{}
	for _, name := range cfg.Cases {
		c, err := LookupCase(name)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		needs[c.Input] = true
	}
	if needs[InputJSON] && cfg.JSONPath == "" {
		return Config{}, fmt.Errorf("%w: %s is empty", ErrInvalidConfig, JSONFileKey)
	}
	if needs[InputHex] && cfg.HexPath == "" {
		return Config{}, fmt.Errorf("%w: %s is empty", ErrInvalidConfig, HexFileKey)
	}

	if _, err := Codec(cfg.JSONCodec); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}
