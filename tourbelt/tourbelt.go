package tourbelt

import (
	"bufio"
	"io"
	"log/slog"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/forest/core"
)

// Solver reads tour belt cases and writes one answer per line.
type Solver struct {
	// Logger receives one debug record per solved case. Nil discards them.
	Logger *slog.Logger
}

// Solve runs a Solver without logging.
func Solve(in io.Reader, out io.Writer) error {
	return (&Solver{}).Solve(in, out)
}

// Solve reads every case from in and writes the answers to out. Answers of the
// cases before a malformed one are still written.
func (s *Solver) Solve(in io.Reader, out io.Writer) error {
	log := s.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := newTokenReader(in)
	w := bufio.NewWriter(out)

	cases, err := r.int("case count")
	if err != nil {
		return err
	}
	if cases < 0 {
		return errors.Errorf("negative case count %d", cases)
	}
	for tc := 1; tc <= cases; tc++ {
		g, err := readCase(r)
		if err != nil {
			if ferr := w.Flush(); ferr != nil {
				return errors.Wrap(ferr, "write answers")
			}
			return errors.Wrapf(err, "case %d", tc)
		}
		edges := g.EdgeCount()
		answer := CountBelts(g)
		log.Debug("tourbelt: case solved",
			slog.Int("case", tc),
			slog.Int("vertices", g.VertexCount()),
			slog.Int("edges", edges),
			slog.Int("answer", answer))
		if _, err := w.WriteString(strconv.Itoa(answer) + "\n"); err != nil {
			return errors.Wrap(err, "write answers")
		}
	}

	return errors.Wrap(w.Flush(), "write answers")
}

// readCase parses "n m" followed by m "u v k" lines into a graph over n
// vertices with 0-based ids.
func readCase(r *tokenReader) (*core.Graph[int, core.Empty], error) {
	n, err := r.int("vertex count")
	if err != nil {
		return nil, err
	}
	m, err := r.int("edge count")
	if err != nil {
		return nil, err
	}
	if n < 0 || m < 0 {
		return nil, errors.Errorf("negative size n=%d m=%d", n, m)
	}

	g := core.NewGraph[int, core.Empty](core.WithVertexCount(n), core.WithEdgeCapacity(m), core.WithLoops())
	for i := 1; i <= m; i++ {
		var uv [3]int
		for j, what := range []string{"source", "target", "synergy"} {
			if uv[j], err = r.int(what); err != nil {
				return nil, errors.Wrapf(err, "edge %d", i)
			}
		}
		u, v, k := uv[0], uv[1], uv[2]
		if u < 1 || u > n || v < 1 || v > n {
			return nil, errors.Errorf("edge %d: vertex out of range [1, %d]: %d %d", i, n, u, v)
		}
		if k <= minSynergy || k >= maxSynergy {
			return nil, errors.Errorf("edge %d: synergy %d out of range", i, k)
		}
		if err := g.AddEdge(u-1, v-1, k); err != nil {
			return nil, errors.Wrapf(err, "edge %d", i)
		}
	}

	return g, nil
}

// tokenReader yields whitespace-separated integers.
type tokenReader struct {
	sc *bufio.Scanner
}

func newTokenReader(in io.Reader) *tokenReader {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

func (r *tokenReader) int(what string) (int, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return 0, errors.Wrapf(err, "read %s", what)
		}
		return 0, errors.Wrapf(io.ErrUnexpectedEOF, "read %s", what)
	}
	v, err := strconv.Atoi(r.sc.Text())
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", what)
	}

	return v, nil
}
