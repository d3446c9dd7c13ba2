/*This provides time-series plots for the thermodynamic properties
 * extracted from a log file, in the form of little functions with
 * practical applications*/

//Package plot writes png plots of thermodynamic properties against a
//reference column, normally Step or Time.
package plot

import (
	"fmt"
	"image/color"

	thermo "github.com/rmera/gothermo"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicTimeSeriesPlot(title, xlabel string) *gplot.Plot {
	p := gplot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Add(plotter.NewGrid())
	return p
}

//TimeSeries plots each property in yprops against the property xprop,
//one line per property, and saves the result as plotname.png. If a
//Bounds is given, only the rows it admits are plotted. Returns an error
//or nil.
func TimeSeries(t *thermo.Thermo, xprop string, yprops []string, title, plotname string, b ...*thermo.Bounds) error {
	if t == nil || len(yprops) == 0 {
		return fmt.Errorf("TimeSeries: nothing to plot")
	}
	x, err := t.OneProp(xprop, b...)
	if err != nil {
		return err
	}
	p := basicTimeSeriesPlot(title, xprop)
	if len(yprops) == 1 {
		p.Y.Label.Text = yprops[0]
	}
	for key, name := range yprops {
		y, err := t.OneProp(name, b...)
		if err != nil {
			return err
		}
		pts := make(plotter.XYs, len(x))
		for i := range x {
			pts[i].X = x[i]
			pts[i].Y = y[i]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		//set the colors
		r, g, bl := colors(key, len(yprops))
		l.LineStyle.Color = color.RGBA{R: r, B: bl, G: g, A: 255}
		l.LineStyle.Width = vg.Points(1)
		p.Add(l)
		p.Legend.Add(name, l)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename); err != nil {
		return err
	}
	return nil
}

//Histo plots the distribution of one property as a bar chart and saves
//it as plotname.png. The counts and dividers are as returned by
//stat.Histogram.
func Histo(counts, dividers []float64, prop, plotname string) error {
	if len(counts) == 0 || len(dividers) != len(counts)+1 {
		return fmt.Errorf("Histo: ill-formed histogram: %d counts, %d dividers", len(counts), len(dividers))
	}
	p := gplot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = prop + " distribution"
	p.X.Label.Text = prop
	p.Y.Label.Text = "Count"
	pts := make(plotter.XYs, len(counts))
	for i, v := range counts {
		pts[i].X = (dividers[i] + dividers[i+1]) / 2 //bin centers
		pts[i].Y = v
	}
	h, err := plotter.NewHistogram(pts, len(counts))
	if err != nil {
		return err
	}
	p.Add(h)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename)
}
