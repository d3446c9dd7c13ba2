/*
 * doc.go, part of gothermo.
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

/*Package thermo extracts thermodynamic data from LAMMPS log files.

A LAMMPS log contains, among much else, one or more "thermo" blocks: a
header line naming the printed properties (Step, Temp, Press, etc.)
followed by one line of numbers per thermo output step, and closed by a
line whose first word is "Loop". gothermo locates such a block by its
keywords, reads it into a dense gonum matrix, and answers queries for one
or more properties by name, optionally restricted to a window of the Step
(or Time) column.


	**gothermo capabilities**

    Reads the thermo block of a LAMMPS log file, plain or compressed
	(gzip, zstd or flate, selected by the file extension).

    Selects which block to read when a log contains several runs.

    Reads logs of still-running simulations (no terminator keyword;
	the last, possibly unfinished, line is discarded).

    Retrieves any set of properties, in any order, by their header
	names.

    Restricts a query to a range of a reference column, normally Step
	or Time.

    The subpackage stat computes means, standard errors, running and
	block averages and histograms of the extracted series.

    The subpackage plot writes time-series plots of the extracted
	properties.

The data is kept exactly as parsed. No unit conversion of any kind is
ever performed.
*/
package thermo
