package spy

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadMatrixMarket reads a sparse matrix in MatrixMarket coordinate format,
// the interchange format most FEM and circuit tools can emit.
//
// Supported header fields are real, integer and pattern (pattern entries get
// the value 1.0). For symmetric/skew-symmetric/hermitian files the stored
// lower triangle is mirrored. Indices in the file are 1-based.
func ReadMatrixMarket(r io.Reader) (*COO, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return nil, errors.New("empty input")
	}
	header := strings.Fields(strings.ToLower(sc.Text()))
	if len(header) < 5 || header[0] != "%%matrixmarket" || header[1] != "matrix" {
		return nil, errors.New("not a MatrixMarket file")
	}
	if header[2] != "coordinate" {
		return nil, errors.New("only coordinate format is supported, not " + header[2])
	}
	field := header[3]
	if field != "real" && field != "integer" && field != "pattern" {
		return nil, errors.New("unsupported field type " + field)
	}
	symmetric := header[4] != "general"

	// skip comments, then the size line
	var a *COO
	nnz := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		dims := strings.Fields(line)
		if len(dims) != 3 {
			return nil, errors.New("bad size line: " + line)
		}
		h, err := strconv.Atoi(dims[0])
		if err != nil {
			return nil, errors.New("bad row count: " + err.Error())
		}
		w, err := strconv.Atoi(dims[1])
		if err != nil {
			return nil, errors.New("bad column count: " + err.Error())
		}
		nnz, err = strconv.Atoi(dims[2])
		if err != nil {
			return nil, errors.New("bad entry count: " + err.Error())
		}
		a = NewCOO(h, w)
		break
	}
	if a == nil {
		return nil, errors.New("missing size line")
	}

	read := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			return nil, errors.New("bad entry line: " + line)
		}
		i, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, errors.New("bad row index: " + line)
		}
		j, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, errors.New("bad column index: " + line)
		}
		v := 1.0
		if field != "pattern" {
			if len(parts) < 3 {
				return nil, errors.New("missing value: " + line)
			}
			v, err = strconv.ParseFloat(parts[2], 64)
			if err != nil {
				return nil, errors.New("bad value: " + line)
			}
		}
		if i < 1 || i > a.Height || j < 1 || j > a.Width {
			return nil, errors.New("entry outside declared size: " + line)
		}
		a.Append(i-1, j-1, v)
		if symmetric && i != j {
			a.Append(j-1, i-1, v)
		}
		read++
	}
	if err := sc.Err(); err != nil {
		return nil, errors.New("read: " + err.Error())
	}
	if read != nnz {
		return nil, errors.New("entry count does not match header")
	}
	return a, nil
}

// loads a matrix from a MatrixMarket file on disk
func LoadMatrixMarket(path string) (*COO, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, errors.New("could not open the requested file")
	}
	defer r.Close()
	return ReadMatrixMarket(r)
}
