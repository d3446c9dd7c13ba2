/*
 * log_test.go, part of gothermo.
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
	"fmt"
	"strings"
	"testing"
)

//TestLogRead reads the first thermo block of a 2-run log and checks the
//header and the data against the values in the file.
func TestLogRead(Te *testing.T) {
	th, err := LogRead("test/log.lammps")
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("Log read! Properties:", th.AvailableProps())
	wanted := []string{"Step", "Temp", "E_pair", "E_mol", "TotEng", "Press"}
	props := th.AvailableProps()
	if len(props) != len(wanted) || th.NProps() != len(wanted) {
		Te.Fatalf("Got %d properties, wanted %d", len(props), len(wanted))
	}
	for i, v := range wanted {
		if props[i] != v {
			Te.Errorf("Property %d is %q, should be %q", i, props[i], v)
		}
	}
	if th.Len() != 3 {
		Te.Errorf("Got %d rows, wanted 3", th.Len())
	}
	press, err := th.OneProp("Press")
	if err != nil {
		Te.Fatal(err)
	}
	if press[0] != -3.7033504 || press[2] != 5.8691042 {
		Te.Errorf("Wrong Press values read: %v", press)
	}
}

//TestSkipSections checks that skipping one section selects the second
//run of the log, ignoring the first one entirely.
func TestSkipSections(Te *testing.T) {
	o := DefaultOptions()
	o.SkipSections(1)
	th, err := LogRead("test/log.lammps", o)
	if err != nil {
		Te.Fatal(err)
	}
	if th.Len() != 4 {
		Te.Fatalf("Second block has %d rows, wanted 4", th.Len())
	}
	steps, err := th.OneProp("Step")
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("Second block steps:", steps)
	if steps[0] != 200 || steps[3] != 500 {
		Te.Errorf("Second block covers steps %v, should go from 200 to 500", steps)
	}
	//there is no third block
	o.SkipSections(2)
	_, err = LogRead("test/log.lammps", o)
	if err == nil {
		Te.Error("Skipping 2 sections should have failed, the log only has 2")
	}
	fmt.Println("Expected failure:", err)
}

//TestRunningLog reads a log without a closing keyword, as written by a
//still-running simulation. The last line read must be discarded even
//when it is complete, so N data lines yield N-1 rows.
func TestRunningLog(Te *testing.T) {
	o := DefaultOptions()
	o.NoEndKeyword()
	th, err := LogRead("test/running.lammps", o)
	if err != nil {
		Te.Fatal(err)
	}
	//5 data lines in the file.
	if th.Len() != 4 {
		Te.Fatalf("Got %d rows, wanted 4 (the last line must be discarded)", th.Len())
	}
	steps, err := th.OneProp("Step")
	if err != nil {
		Te.Fatal(err)
	}
	if steps[len(steps)-1] != 300 {
		Te.Errorf("Last kept step is %v, should be 300", steps[len(steps)-1])
	}
}

//TestTruncatedLog reads a log whose last line was cut mid-write. The
//line must be discarded without even trying to parse it.
func TestTruncatedLog(Te *testing.T) {
	o := DefaultOptions()
	o.NoEndKeyword()
	th, err := LogRead("test/truncated.lammps", o)
	if err != nil {
		Te.Fatal(err)
	}
	if th.Len() != 3 {
		Te.Fatalf("Got %d rows, wanted 3", th.Len())
	}
	steps, err := th.OneProp("Step")
	if err != nil {
		Te.Fatal(err)
	}
	if steps[len(steps)-1] != 200 {
		Te.Errorf("Last kept step is %v, should be 200", steps[len(steps)-1])
	}
}

//A log without the closing keyword must fail unless NoEndKeyword is given.
func TestMissingEndKeyword(Te *testing.T) {
	_, err := LogRead("test/running.lammps")
	if err == nil {
		Te.Fatal("Reading a non-terminated block without NoEndKeyword should fail")
	}
	fmt.Println("Expected failure:", err)
}

//A non-numeric field in a data line aborts the whole read.
func TestMalformed(Te *testing.T) {
	_, err := LogRead("test/malformed.lammps")
	if err == nil {
		Te.Fatal("Reading a block with a non-numeric field should fail")
	}
	e, ok := err.(LogError)
	if !ok {
		Te.Fatalf("Error should implement LogError, got %T", err)
	}
	if !e.Critical() {
		Te.Error("A parse failure should be critical")
	}
	fmt.Println("Expected failure:", err)
}

//A header immediately followed by the closing keyword is an empty, but
//valid, table.
func TestEmptyBlock(Te *testing.T) {
	th, err := LogRead("test/empty.lammps")
	if err != nil {
		Te.Fatal(err)
	}
	if th.Len() != 0 || th.NProps() != 4 {
		Te.Errorf("Empty block: got %d rows and %d properties, wanted 0 and 4", th.Len(), th.NProps())
	}
	temp, err := th.OneProp("Temp")
	if err != nil {
		Te.Fatal(err)
	}
	if len(temp) != 0 {
		Te.Errorf("Empty block returned %d values", len(temp))
	}
	m, err := th.Prop([]string{"Temp", "Press"})
	if err != nil || m != nil {
		Te.Errorf("Prop on an empty block should give a nil matrix and no error, got %v, %v", m, err)
	}
}

//Headers with repeated property names are rejected at read time.
func TestDuplicatedHeader(Te *testing.T) {
	_, err := LogRead("test/dup.lammps")
	if err == nil {
		Te.Fatal("A header with a duplicated property name should fail")
	}
	fmt.Println("Expected failure:", err)
}

//TestGzip reads the same log through the gzip branch of the opener.
func TestGzip(Te *testing.T) {
	plain, err := LogRead("test/log.lammps")
	if err != nil {
		Te.Fatal(err)
	}
	gz, err := LogRead("test/gz.lammps.gz")
	if err != nil {
		Te.Fatal(err)
	}
	if gz.Len() != plain.Len() || gz.NProps() != plain.NProps() {
		Te.Fatalf("Compressed and plain reads disagree: %dx%d vs %dx%d", gz.Len(), gz.NProps(), plain.Len(), plain.NProps())
	}
	a, _ := plain.OneProp("TotEng")
	b, err := gz.OneProp("TotEng")
	if err != nil {
		Te.Fatal(err)
	}
	for i, v := range a {
		if b[i] != v {
			Te.Errorf("Row %d: %v from gzip, %v from plain text", i, b[i], v)
		}
	}
}

//TestLogReadFrom parses a block from an already-open reader, with
//non-default keywords.
func TestLogReadFrom(Te *testing.T) {
	log := `some preamble
Data Temp Volume
0 300.0 1000.0
100 305.2 1001.5
End of the block
`
	o := DefaultOptions()
	o.StartKeyword("Data")
	o.EndKeyword("End")
	th, err := LogReadFrom(strings.NewReader(log), "in-memory", o)
	if err != nil {
		Te.Fatal(err)
	}
	if th.Len() != 2 || th.NProps() != 3 {
		Te.Fatalf("Got %dx%d, wanted 2x3", th.Len(), th.NProps())
	}
	vol, err := th.OneProp("Volume")
	if err != nil {
		Te.Fatal(err)
	}
	if vol[0] != 1000.0 || vol[1] != 1001.5 {
		Te.Errorf("Wrong Volume values: %v", vol)
	}
}

//Reading the same file twice yields identical tables.
func TestIdempotence(Te *testing.T) {
	a, err := LogRead("test/log.lammps")
	if err != nil {
		Te.Fatal(err)
	}
	b, err := LogRead("test/log.lammps")
	if err != nil {
		Te.Fatal(err)
	}
	pa := a.AvailableProps()
	pb := b.AvailableProps()
	for i, v := range pa {
		if pb[i] != v {
			Te.Fatalf("Headers differ between reads: %v vs %v", pa, pb)
		}
	}
	for _, name := range pa {
		va, _ := a.OneProp(name)
		vb, _ := b.OneProp(name)
		for i := range va {
			if va[i] != vb[i] {
				Te.Errorf("%s row %d differs between reads: %v vs %v", name, i, va[i], vb[i])
			}
		}
	}
}
