// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

// sysctl-value reads one sysctl parameter and prints its decoded value,
// optionally with the kernel's description of it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/antimetal/sysctl/pkg/sysctl"
)

func main() {
	var (
		name     = flag.String("name", "kern.osrevision", "Dotted sysctl name to read")
		describe = flag.Bool("describe", false, "Also print the parameter's description (FreeBSD only)")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	zapConfig := zap.NewProductionConfig()
	if *verbose {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapLog, err := zapConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = zapLog.Sync() }()
	logger := zapr.NewLogger(zapLog)

	c := sysctl.New(sysctl.WithLogger(logger))

	oid, err := c.Name2OID(*name)
	if err != nil {
		logger.Error(err, "failed to resolve name", "name", *name)
		os.Exit(1)
	}

	info, err := c.Info(oid)
	if err != nil {
		logger.Error(err, "failed to fetch metadata", "oid", oid.String())
		os.Exit(1)
	}

	v, err := c.ValueOID(oid)
	if err != nil {
		logger.Error(err, "failed to read value", "name", *name)
		os.Exit(1)
	}

	fmt.Printf("%s (oid %s, type %s): %s\n", *name, oid, info.Type, v)

	if temp, ok := v.(sysctl.Temperature); ok {
		fmt.Printf("  %.2fK  %.2fC  %.2fF\n", temp.Kelvin(), temp.Celsius(), temp.Fahrenheit())
	}

	if *describe {
		desc, err := c.DescriptionOID(oid)
		if err != nil {
			logger.Error(err, "failed to fetch description", "name", *name)
			os.Exit(1)
		}
		fmt.Printf("  description: %s\n", desc)
	}
}
