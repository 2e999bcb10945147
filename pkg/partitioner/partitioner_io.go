package partitioner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lintang-b-s/randcut/pkg/util"
)

/*
cut file format:

	n cut_size
	side of vertex 0 (0 or 1)
	...
	side of vertex n-1
*/

func (c *Cut) WriteCut(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "%d %d\n", len(c.flags), c.size); err != nil {
		return err
	}
	for _, flag := range c.flags {
		side := 0
		if flag {
			side = 1
		}
		if _, err := fmt.Fprintf(w, "%d\n", side); err != nil {
			return err
		}
	}
	return w.Flush()
}

func ReadCut(filename string) (*Cut, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseCut(f)
}

func parseCut(r io.Reader) (*Cut, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, util.NewErrorf(util.ErrMalformedInput, nil, "missing header line \"n cut_size\"")
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 2 {
		return nil, util.NewErrorf(util.ErrMalformedInput, util.Fields{"line": 1, "content": scanner.Text()},
			"expected exactly two integers")
	}
	n, errN := strconv.Atoi(header[0])
	size, errSize := strconv.Atoi(header[1])
	if errN != nil || errSize != nil || n < 0 || size < 0 {
		return nil, util.NewErrorf(util.ErrMalformedInput, util.Fields{"line": 1, "content": scanner.Text()},
			"invalid cut header")
	}

	var flags []bool
	for lineNo := 2; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "0":
			flags = append(flags, false)
		case "1":
			flags = append(flags, true)
		default:
			return nil, util.NewErrorf(util.ErrMalformedInput, util.Fields{"line": lineNo, "content": line},
				"side must be 0 or 1")
		}
		if len(flags) > n {
			return nil, util.NewErrorf(util.ErrMalformedInput, util.Fields{"header": n, "line": lineNo},
				"more sides than the header announces")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(flags) != n {
		return nil, util.NewErrorf(util.ErrMalformedInput, util.Fields{"header": n, "read": len(flags)},
			"vertex count does not match header")
	}
	return NewCut(flags, size), nil
}
