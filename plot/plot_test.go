/*This provides some tests for the plotting functions, in the form of
 * little functions that have practical applications*/

package plot

import (
	"fmt"
	"os"
	"testing"

	thermo "github.com/rmera/gothermo"
	"github.com/rmera/gothermo/stat"
)

//TestTimeSeries plots the temperature and pressure of the second run in
//the test log against the time step.
func TestTimeSeries(Te *testing.T) {
	o := thermo.DefaultOptions()
	o.SkipSections(1)
	th, err := thermo.LogRead("../test/log.lammps", o)
	if err != nil {
		Te.Fatal(err)
	}
	err = TimeSeries(th, "Step", []string{"Temp", "Press"}, "Test thermo series", "../test/Series")
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat("../test/Series.png"); err != nil {
		Te.Error("No plot written:", err)
	}
	fmt.Println("Series plot written")
}

//TestTimeSeriesBounds only plots the steps within the given window.
func TestTimeSeriesBounds(Te *testing.T) {
	th, err := thermo.LogRead("../test/log.lammps")
	if err != nil {
		Te.Fatal(err)
	}
	b := thermo.NewBounds()
	b.Min(100)
	b.Max(200)
	err = TimeSeries(th, "Step", []string{"TotEng"}, "Total energy", "../test/TotEng", b)
	if err != nil {
		Te.Fatal(err)
	}
}

//An unknown property should fail before anything is written.
func TestTimeSeriesBadProp(Te *testing.T) {
	th, err := thermo.LogRead("../test/log.lammps")
	if err != nil {
		Te.Fatal(err)
	}
	err = TimeSeries(th, "Step", []string{"Pressure"}, "nope", "../test/Nope")
	if err == nil {
		Te.Fatal("Plotting an absent property should fail")
	}
	fmt.Println("Expected failure:", err)
}

//TestHisto plots the distribution of the temperature.
func TestHisto(Te *testing.T) {
	o := thermo.DefaultOptions()
	o.SkipSections(1)
	th, err := thermo.LogRead("../test/log.lammps", o)
	if err != nil {
		Te.Fatal(err)
	}
	temp, err := th.OneProp("Temp")
	if err != nil {
		Te.Fatal(err)
	}
	counts, dividers := stat.Histogram(temp, 2)
	if err := Histo(counts, dividers, "Temp", "../test/TempHisto"); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat("../test/TempHisto.png"); err != nil {
		Te.Error("No histogram plot written:", err)
	}
}
