// Command ls-ephemeris is a terminal display of the Sun and Moon for an
// observer: solar declination, hour angle and distance, lunar position and
// phase, refreshed live.
package main

import (
	"os"
	_ "time/tzdata"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
