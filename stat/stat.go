//Package stat provides the usual statistics of thermodynamic time series
//extracted from a log file: means, fluctuations and their errors, plus
//running and block averages, which are the standard tools to deal with
//the time correlation of molecular dynamics data.
package stat

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	gstat "gonum.org/v1/gonum/stat"
)

//Mean returns the average of the series.
func Mean(data []float64) float64 {
	return gstat.Mean(data, nil)
}

//StdDev returns the sample standard deviation of the series, i.e. the
//size of the fluctuations of the property.
func StdDev(data []float64) float64 {
	return gstat.StdDev(data, nil)
}

//SEM returns the standard error of the mean of the series, assuming the
//points are uncorrelated. For correlated MD data it underestimates the
//true error, use BlockAverage instead.
func SEM(data []float64) float64 {
	return gstat.StdErr(gstat.StdDev(data, nil), float64(len(data)))
}

//Running returns the running average of the series with the given
//window, i.e. element i of the result is the mean of the window points
//ending at data[i+window-1]. The result has len(data)-window+1 points.
func Running(data []float64, window int) []float64 {
	if window <= 0 || window > len(data) {
		panic(fmt.Sprintf("gothermo/stat: running average window %d out of range for a %d-point series", window, len(data)))
	}
	ret := make([]float64, 0, len(data)-window+1)
	sum := floats.Sum(data[:window])
	ret = append(ret, sum/float64(window))
	for i := window; i < len(data); i++ {
		sum += data[i] - data[i-window]
		ret = append(ret, sum/float64(window))
	}
	return ret
}

//BlockAverage splits the series into nblocks consecutive blocks of equal
//size (any remainder at the end of the series is discarded) and returns
//the mean of each block and the standard error of those means. When the
//blocks are longer than the correlation time of the data, the latter is
//a fair estimate of the error of the total mean.
func BlockAverage(data []float64, nblocks int) ([]float64, float64) {
	if nblocks <= 1 || nblocks > len(data) {
		panic(fmt.Sprintf("gothermo/stat: %d blocks requested for a %d-point series", nblocks, len(data)))
	}
	size := len(data) / nblocks
	means := make([]float64, nblocks)
	for i := range means {
		means[i] = gstat.Mean(data[i*size:(i+1)*size], nil)
	}
	sem := gstat.StdErr(gstat.StdDev(means, nil), float64(nblocks))
	return means, sem
}

//Histogram bins the series into n equal-width bins spanning its range
//and returns the counts and the n+1 bin dividers.
func Histogram(data []float64, n int) (counts, dividers []float64) {
	if n <= 0 || len(data) == 0 {
		panic(fmt.Sprintf("gothermo/stat: histogram of %d points in %d bins", len(data), n))
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	min := sorted[0]
	max := sorted[len(sorted)-1]
	if min == max {
		//a constant series still gets a well-formed, single-spike histogram
		min -= 0.5
		max += 0.5
	}
	dividers = make([]float64, n+1)
	floats.Span(dividers, min, max)
	//the top divider is nudged up so the largest value falls in the last bin
	dividers[n] = math.Nextafter(max, math.Inf(1))
	counts = gstat.Histogram(nil, dividers, sorted, nil)
	return counts, dividers
}
