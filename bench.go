package blockbench

import (
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/cpu"
	log "github.com/sirupsen/logrus"
)

// Suite runs the selected cases one after another.
type Suite struct {
	Runner     *Runner
	Codec      JSONCodec
	Iterations int
	JSONPath   string
	HexPath    string
	Cases      []string
	Log        *log.Logger
}

func NewSuite(cfg Config, runner *Runner) (*Suite, error) {
	codec, err := Codec(cfg.JSONCodec)
	if err != nil {
		return nil, err
	}

	return &Suite{
		Runner:     runner,
		Codec:      codec,
		Iterations: cfg.Iterations,
		JSONPath:   cfg.JSONPath,
		HexPath:    cfg.HexPath,
		Cases:      cfg.Cases,
		Log:        log.StandardLogger(),
	}, nil
}

func (s *Suite) path(kind InputKind) string {
	if kind == InputHex {
		return s.HexPath
	}
	return s.JSONPath
}

// Run stops at the first failing case. A case whose input cannot be read
// fails before its header is printed.
func (s *Suite) Run() ([]Summary, error) {
	selected := make([]Case, len(s.Cases))
	for i, name := range s.Cases {
		c, err := LookupCase(name)
		if err != nil {
			return nil, err
		}
		selected[i] = c
	}

	l := s.Log.WithField("runID", uuid.NewString())
	logHost(l)

	var sums []Summary
	for _, c := range selected {
		cl := l.WithFields(log.Fields{
			"case":  c.Name,
			"input": c.Input,
			"codec": s.Codec.Name(),
		})

		input, err := readInput(s.path(c.Input), c.Input)
		if err != nil {
			return sums, fmt.Errorf("read %s input: %w", c.Name, err)
		}
		cl.WithField("bytes", len(input)).Debug("bench read input")

		work, err := c.Bind(input, s.Codec)
		if err != nil {
			return sums, fmt.Errorf("prepare %s: %w", c.Name, err)
		}

		sum, err := s.Runner.Measure(c.Name, s.Iterations, work)
		if err != nil {
			return sums, err
		}
		cl.WithFields(sum.Fields()).Info("bench case done")

		sums = append(sums, sum)
	}
	return sums, nil
}

func logHost(l *log.Entry) {
	fields := log.Fields{
		"goVersion": runtime.Version(),
		"goos":      runtime.GOOS,
		"goarch":    runtime.GOARCH,
	}

	infos, err := cpu.Info()
	if err != nil {
		l.WithError(err).Warn("bench cpu info unavailable")
	} else if len(infos) > 0 {
		fields["cpu"] = infos[0].ModelName
	}

	if n, err := cpu.Counts(true); err == nil {
		fields["cpus"] = n
	}

	l.WithFields(fields).Info("bench host")
}
