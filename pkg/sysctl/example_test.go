// Copyright Antimetal, Inc. All rights reserved.
//
// Use of this source code is governed by a source available license that can be found in the
// LICENSE file or at:
// https://polyformproject.org/wp-content/uploads/2020/06/PolyForm-Shield-1.0.0.txt

package sysctl_test

import (
	"fmt"
	"log"

	"github.com/antimetal/sysctl/pkg/sysctl"
)

func ExampleClient_Value() {
	c := sysctl.New()

	v, err := c.Value("kern.osrevision")
	if err != nil {
		log.Fatal(err)
	}
	if rev, ok := v.(sysctl.Int); ok {
		fmt.Println("osrevision:", rev)
	}
}

func ExampleClient_Extract() {
	// struct clockinfo from sys/time.h.
	layout, err := sysctl.NewLayout(20,
		sysctl.Field{Name: "hz", Offset: 0, Type: sysctl.FieldInt32},
		sysctl.Field{Name: "tick", Offset: 4, Type: sysctl.FieldInt32},
		sysctl.Field{Name: "stathz", Offset: 12, Type: sysctl.FieldInt32},
		sysctl.Field{Name: "profhz", Offset: 16, Type: sysctl.FieldInt32},
	)
	if err != nil {
		log.Fatal(err)
	}

	rec, err := sysctl.New().Extract(layout, "kern.clockrate")
	if err != nil {
		log.Fatal(err)
	}

	hz, _ := rec.Int32("hz")
	tick, _ := rec.Int32("tick")
	fmt.Printf("hz=%d tick=%d\n", hz, tick)
}

func ExampleClient_SetValue() {
	c := sysctl.New()

	confirmed, err := c.SetValue("hw.usb.debug", sysctl.Int(1))
	if err != nil {
		log.Fatal(err)
	}
	// SetValue re-reads the parameter; confirmed is what the kernel now
	// reports, not an echo of the input.
	fmt.Println("hw.usb.debug:", confirmed)
}

func ExampleTemperature() {
	v, err := sysctl.New().Value("dev.cpu.0.temperature")
	if err != nil {
		log.Fatal(err)
	}
	if temp, ok := v.(sysctl.Temperature); ok {
		fmt.Printf("%.2fK %.2fC %.2fF\n", temp.Kelvin(), temp.Celsius(), temp.Fahrenheit())
	}
}
