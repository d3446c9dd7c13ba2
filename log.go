/*
 * log.go, part of gothermo.
 *
 * Copyright 2020 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package thermo

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

//Options contains the options for reading a thermo block from a log file.
type Options struct {
	start string
	end   string
	skip  int
	noend bool //read until the end of the file, discarding the last line.
}

//DefaultOptions returns options matching the normal LAMMPS thermo output:
//the header line starts with "Step", the block is closed by a line starting
//with "Loop" ("Loop time of..."), and the first block found is read.
func DefaultOptions() *Options {
	r := new(Options)
	r.start = "Step"
	r.end = "Loop"
	return r
}

//Returns the keyword that identifies the header line,
//and sets it to a new value, if given.
func (O *Options) StartKeyword(k ...string) string {
	if len(k) > 0 && k[0] != "" {
		O.start = k[0]
	}
	return O.start
}

//Returns the keyword that identifies the line closing the block,
//and sets it to a new value, if given. Setting a keyword undoes a
//previous call to NoEndKeyword.
func (O *Options) EndKeyword(k ...string) string {
	if len(k) > 0 && k[0] != "" {
		O.end = k[0]
		O.noend = false
	}
	return O.end
}

//Returns the number of thermo sections skipped before the one read,
//and sets it to a new value, if given.
func (O *Options) SkipSections(n ...int) int {
	if len(n) > 0 && n[0] >= 0 {
		O.skip = n[0]
	}
	return O.skip
}

//NoEndKeyword directs the reader to take data until the end of the file
//instead of looking for a closing keyword. The last line read is then
//always discarded, as the log of a still-running simulation can end
//mid-line.
func (O *Options) NoEndKeyword() {
	O.noend = true
}

//Why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.closeql()
	return nil
}

//uncompress wraps f with the decompressor matching the file extension.
//Plain text files are passed through.
func uncompress(f *os.File, name string) (io.ReadCloser, error) {
	low := strings.ToLower(name)
	switch {
	case strings.HasSuffix(low, ".gz"):
		return gzip.NewReader(f)
	case strings.HasSuffix(low, ".zst"):
		r, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		return &zstdql{r.Close, r}, nil
	case strings.HasSuffix(low, ".z"):
		return flate.NewReader(f), nil
	default:
		return io.NopCloser(f), nil
	}
}

//LogRead reads the thermo block from the LAMMPS log file filename and
//returns it as a queryable table. With no options given the first block
//headed by "Step" and closed by "Loop" is read. Files ending in .gz, .zst
//or .z are uncompressed on the fly.
func LogRead(filename string, o ...*Options) (*Thermo, error) {
	opts := DefaultOptions()
	if len(o) > 0 && o[0] != nil {
		opts = o[0]
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, logError{UnableToOpen + ": " + err.Error(), filename, []string{"LogRead"}, true}
	}
	defer f.Close()
	r, err := uncompress(f, filename)
	if err != nil {
		return nil, logError{UnableToOpen + ": " + err.Error(), filename, []string{"LogRead"}, true}
	}
	defer r.Close()
	t, err := LogReadFrom(r, filename, opts)
	if err != nil {
		return nil, errDecorate(err, "LogRead")
	}
	return t, nil
}

//LogReadFrom reads the thermo block from the already-open log in r.
//name is only used to report errors, it can be empty.
func LogReadFrom(r io.Reader, name string, o ...*Options) (*Thermo, error) {
	opts := DefaultOptions()
	if len(o) > 0 && o[0] != nil {
		opts = o[0]
	}
	if opts.skip < 0 {
		return nil, logError{fmt.Sprintf("%s: %d", NegativeSkip, opts.skip), name, []string{"LogReadFrom"}, true}
	}
	scanner := bufio.NewScanner(r)
	header, err := scanHeader(scanner, opts, name)
	if err != nil {
		return nil, errDecorate(err, "LogReadFrom")
	}
	data, nrows, err := scanData(scanner, len(header), opts, name)
	if err != nil {
		return nil, errDecorate(err, "LogReadFrom")
	}
	t := new(Thermo)
	t.filename = name
	t.names = header
	if nrows > 0 {
		t.data = mat.NewDense(nrows, len(header), data)
	}
	return t, nil
}

//scanHeader advances the scanner to the header line of the wanted thermo
//section and returns the property names on it.
func scanHeader(scanner *bufio.Scanner, opts *Options, name string) ([]string, error) {
	found := 0
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] != opts.start {
			continue
		}
		found++
		if found > opts.skip {
			if dup := duplicated(fields); dup != "" {
				return nil, logError{fmt.Sprintf("%s: column %q appears more than once in header %q", WrongFormat, dup, scanner.Text()), name, []string{"scanHeader"}, true}
			}
			return fields, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, logError{ReadError + ": " + err.Error(), name, []string{"scanHeader"}, true}
	}
	return nil, logError{fmt.Sprintf("%s: start keyword %q found %d time(s), needed %d", KeywordNotFound, opts.start, found, opts.skip+1), name, []string{"scanHeader"}, true}
}

//scanData reads data rows until the closing keyword (or, with no closing
//keyword, until the end of the input, discarding the last line read).
//It returns the values in row-major order, plus the number of rows.
func scanData(scanner *bufio.Scanner, ncols int, opts *Options, name string) ([]float64, int, error) {
	data := make([]float64, 0, 10*ncols)
	nrows := 0
	var held string
	haveHeld := false
	terminated := false
	for scanner.Scan() {
		line := scanner.Text()
		if opts.noend {
			//The held line is only parsed once we know it was not the last
			//one, which could be half-written.
			if haveHeld {
				row, err := parseRow(held, ncols, name)
				if err != nil {
					return nil, 0, errDecorate(err, "scanData")
				}
				data = append(data, row...)
				nrows++
			}
			held = line
			haveHeld = true
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == opts.end {
			terminated = true
			break
		}
		row, err := parseRow(line, ncols, name)
		if err != nil {
			return nil, 0, errDecorate(err, "scanData")
		}
		data = append(data, row...)
		nrows++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, logError{ReadError + ": " + err.Error(), name, []string{"scanData"}, true}
	}
	if !opts.noend && !terminated {
		return nil, 0, logError{fmt.Sprintf("%s: end keyword %q not found after the header", KeywordNotFound, opts.end), name, []string{"scanData"}, true}
	}
	return data, nrows, nil
}

//parseRow parses one data line into exactly ncols numbers.
func parseRow(line string, ncols int, name string) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) != ncols {
		return nil, logError{fmt.Sprintf("%s: %d field(s) instead of %d in line %q", WrongFormat, len(fields), ncols, line), name, []string{"parseRow"}, true}
	}
	row := make([]float64, ncols)
	for i, v := range fields {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, logError{fmt.Sprintf("%s: non-numeric field %q in line %q", WrongFormat, v, line), name, []string{"parseRow"}, true}
		}
		row[i] = n
	}
	return row, nil
}

//duplicated returns the first repeated string in names, or "".
func duplicated(names []string) string {
	seen := make(map[string]bool, len(names))
	for _, v := range names {
		if seen[v] {
			return v
		}
		seen[v] = true
	}
	return ""
}
