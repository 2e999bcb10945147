package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/randcut/pkg/util"
)

/*
edge list format:

	# comment
	n m
	u_0 v_0
	...
	u_{m-1} v_{m-1}

files ending in .bz2 are bzip2 compressed.
*/

func (g *Graph) WriteGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if !strings.HasSuffix(filename, ".bz2") {
		return g.WriteEdgeList(f)
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if err := g.WriteEdgeList(bz); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}

func (g *Graph) WriteEdgeList(out io.Writer) error {
	w := bufio.NewWriter(out)

	fmt.Fprintf(w, "%d %d\n", g.n, len(g.edges))
	for _, e := range g.edges {
		fmt.Fprintf(w, "%d %d\n", e.u, e.v)
	}
	return w.Flush()
}

func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, ".bz2") {
		bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
		if err != nil {
			return nil, err
		}
		defer bz.Close()
		r = bz
	}
	return ParseEdgeList(r)
}

// MAX_VERTICES caps the vertex count a graph file may announce in its header.
const MAX_VERTICES = 1 << 22

func ParseEdgeList(r io.Reader) (*Graph, error) {
	br := bufio.NewReader(r)

	var (
		g        *Graph
		lineNo   int
		expected int
	)

	for {
		line, err := readLine(br)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		eof := errors.Is(err, io.EOF)
		lineNo++

		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			ff := strings.Fields(line)
			if len(ff) != 2 {
				return nil, util.NewErrorf(util.ErrMalformedInput,
					util.Fields{"line": lineNo, "content": line},
					"expected exactly two integers")
			}
			a, errA := strconv.ParseUint(ff[0], 10, 32)
			b, errB := strconv.ParseUint(ff[1], 10, 32)
			if errA != nil || errB != nil {
				return nil, util.WrapErrorf(errors.Join(errA, errB), util.ErrMalformedInput,
					"line %d: invalid integer in %q", lineNo, line)
			}

			if g == nil {
				if a > MAX_VERTICES {
					return nil, util.NewErrorf(util.ErrMalformedInput,
						util.Fields{"line": lineNo, "n": a, "max": MAX_VERTICES},
						"vertex count exceeds the supported maximum")
				}
				g = NewGraph(int(a))
				expected = int(b)
			} else {
				if err := g.AddEdgeChecked(Index(a), Index(b)); err != nil {
					return nil, util.WrapErrorf(err, util.ErrMalformedInput, "line %d: %v", lineNo, err)
				}
			}
		}

		if eof {
			break
		}
	}

	if g == nil {
		return nil, util.NewErrorf(util.ErrMalformedInput, nil, "missing header line \"n m\"")
	}
	if g.NumberOfEdges() != expected {
		return nil, util.NewErrorf(util.ErrMalformedInput,
			util.Fields{"header": expected, "read": g.NumberOfEdges()},
			"edge count does not match header")
	}
	return g, nil
}

// readLine returns the next line without its terminator. io.EOF is returned together with the
// last, unterminated, line.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return strings.TrimRight(line, "\r\n"), err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
