// Go port of Coda Hale's Metrics library
//
// <https://github.com/rcrowley/go-metrics>
//
// Coda Hale's original work: <https://github.com/codahale/metrics>

// Package metrics provides general system and process level metrics collection.
package metrics

import (
	"os"
	"strconv"
	"strings"
)

// Enabled is checked by the constructor functions for all of the
// standard metrics. If it is true, the metric returned is a stub.
//
// This global kill-switch helps quantify the observer effect and makes
// for less cluttered pprof profiles.
var Enabled = false

// enablerFlags is the CLI flag names to use to enable metrics collections.
var enablerFlags = []string{"metrics"}

// enablerEnvVars is the env var names to use to enable metrics collections.
var enablerEnvVars = []string{"GETH_METRICS"}

// init enables or disables the metrics system. Since we need this to run before
// any other code gets to create meters and timers, we'll actually do an ugly hack
// and peek into the command line args for the metrics flag.
func init() {
	for _, enabler := range enablerEnvVars {
		if val, found := os.LookupEnv(enabler); found {
			if enable, _ := strconv.ParseBool(val); enable { // ignore error, flag parser will choke on it later
				Enabled = true
			}
		}
	}
	for _, arg := range os.Args {
		flag := strings.TrimLeft(arg, "-")
		for _, enabler := range enablerFlags {
			if !Enabled && flag == enabler {
				Enabled = true
			}
		}
	}
}

type emptySnapshot struct{}

func (*emptySnapshot) Count() int64                 { return 0 }
func (*emptySnapshot) Max() int64                   { return 0 }
func (*emptySnapshot) Mean() float64                { return 0.0 }
func (*emptySnapshot) Min() int64                   { return 0 }
func (*emptySnapshot) Percentile(p float64) float64 { return 0.0 }
func (*emptySnapshot) Percentiles(ps []float64) []float64 {
	return make([]float64, len(ps))
}
func (*emptySnapshot) Rate() float64     { return 0.0 }
func (*emptySnapshot) Rate1() float64    { return 0.0 }
func (*emptySnapshot) Rate5() float64    { return 0.0 }
func (*emptySnapshot) Rate15() float64   { return 0.0 }
func (*emptySnapshot) RateMean() float64 { return 0.0 }
func (*emptySnapshot) Size() int         { return 0 }
func (*emptySnapshot) StdDev() float64   { return 0.0 }
func (*emptySnapshot) Sum() int64        { return 0 }
func (*emptySnapshot) Value() int64      { return 0 }
func (*emptySnapshot) Values() []int64   { return []int64{} }
func (*emptySnapshot) Variance() float64 { return 0.0 }
