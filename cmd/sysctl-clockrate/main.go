// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

// sysctl-clockrate pulls apart the kern.clockrate struct with an explicit
// field layout instead of a struct cast.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/antimetal/sysctl/pkg/sysctl"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	flag.Parse()

	logger := logr.Discard()
	if *verbose {
		logger = funcr.New(func(prefix, args string) {
			fmt.Fprintf(os.Stderr, "%s [%s] %s\n", time.Now().Format(time.RFC3339), prefix, args)
		}, funcr.Options{
			Verbosity: 2,
		})
	}

	// struct clockinfo from sys/time.h: five C ints.
	layout, err := sysctl.NewLayout(20,
		sysctl.Field{Name: "hz", Offset: 0, Type: sysctl.FieldInt32},
		sysctl.Field{Name: "tick", Offset: 4, Type: sysctl.FieldInt32},
		sysctl.Field{Name: "spare", Offset: 8, Type: sysctl.FieldInt32},
		sysctl.Field{Name: "stathz", Offset: 12, Type: sysctl.FieldInt32},
		sysctl.Field{Name: "profhz", Offset: 16, Type: sysctl.FieldInt32},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad layout: %v\n", err)
		os.Exit(1)
	}

	c := sysctl.New(sysctl.WithLogger(logger))

	rec, err := c.Extract(layout, "kern.clockrate")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read kern.clockrate: %v\n", err)
		os.Exit(1)
	}

	hz, _ := rec.Int32("hz")
	tick, _ := rec.Int32("tick")
	stathz, _ := rec.Int32("stathz")
	profhz, _ := rec.Int32("profhz")

	fmt.Printf("kern.clockrate: hz=%d tick=%d stathz=%d profhz=%d\n", hz, tick, stathz, profhz)
}
