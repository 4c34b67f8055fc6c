package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ParseDimacs reads a DIMACS CNF problem and returns its clauses as lists
// of signed integers. Comment ("c") and header ("p") lines are skipped;
// every other token is a literal, with 0 terminating the current clause.
// Clauses may span lines. A trailing empty clause produced by a stray
// final 0 is discarded.
func ParseDimacs(in io.Reader) ([][]int, error) {
	scanner := bufio.NewScanner(in)
	clauses := [][]int{}
	clause := []int{}

	for scanner.Scan() {
		fields := bytes.Fields(scanner.Bytes())

		if len(fields) == 0 {
			continue
		}
		switch string(fields[0]) {
		case "c", "p":
			continue
		}
		for _, field := range fields {
			p, err := strconv.Atoi(string(field))
			if err != nil {
				return nil, errors.Wrapf(err, "parse literal %q", field)
			}
			if p == 0 {
				clauses = append(clauses, clause)
				clause = []int{}
			} else {
				clause = append(clause, p)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read cnf")
	}
	if len(clause) > 0 {
		// Unterminated final clause.
		clauses = append(clauses, clause)
	} else if n := len(clauses); n > 0 && len(clauses[n-1]) == 0 {
		// Stray final 0.
		clauses = clauses[:n-1]
	}
	return clauses, nil
}

// WriteDimacs writes clauses in DIMACS CNF form, with a "p cnf" header
// sized for nVars variables.
func WriteDimacs(w io.Writer, clauses [][]int, nVars int) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", nVars, len(clauses)); err != nil {
		return errors.Wrap(err, "write cnf header")
	}
	for _, clause := range clauses {
		for _, p := range clause {
			if _, err := fmt.Fprintf(w, "%d ", p); err != nil {
				return errors.Wrap(err, "write cnf clause")
			}
		}
		if _, err := fmt.Fprint(w, "0\n"); err != nil {
			return errors.Wrap(err, "write cnf clause")
		}
	}
	return nil
}
