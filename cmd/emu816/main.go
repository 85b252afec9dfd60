// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/sharkeymike/emu816go/hardware/cpu"
	"github.com/sharkeymike/emu816go/hardware/memory/cpubus"
	"github.com/sharkeymike/emu816go/loader"
	"github.com/sharkeymike/emu816go/logger"
	"github.com/sharkeymike/emu816go/monitor"
	"github.com/sharkeymike/emu816go/traceserver"
)

const (
	defaultAddrMask = 0xffffff
	defaultRAMSize  = 512 * 1024
)

func main() {
	var (
		debug     = flag.Bool("d", false, "run under the interactive step monitor")
		traceAddr = flag.String("trace", "", "serve a websocket trace feed at this address, e.g. :6816")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: emu816 [-d] [-trace addr] s19-file ...\n")
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	log := logger.NewLogger(1000)
	log.SetEcho(logger.Stdout)

	bus := cpubus.NewFlatBus(defaultAddrMask, defaultRAMSize, nil)
	mc := cpu.NewCPU(bus)

	for _, name := range flag.Args() {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "emu816: %v\n", err)
			os.Exit(-1)
		}
		_, err = loader.LoadSRecord(f, bus)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "emu816: load failed: %v\n", err)
			os.Exit(-1)
		}
	}

	var trace *traceserver.Server
	if *traceAddr != "" {
		trace = traceserver.NewServer(log)
		http.HandleFunc("/trace", trace.Handler())
		go func() {
			if err := http.ListenAndServe(*traceAddr, nil); err != nil {
				log.Logf(logger.Allow, "traceserver", "listen failed: %v", err)
			}
		}()
	}

	if err := mc.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "emu816: reset failed: %v\n", err)
		os.Exit(1)
	}

	if *debug {
		mon, err := monitor.NewMonitor(mc, os.Stdin, os.Stdout, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "emu816: %v\n", err)
			os.Exit(1)
		}
		if err := mon.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "emu816: %v\n", err)
			os.Exit(1)
		}
		return
	}

	totalCycles := 0
	for !mc.Stopped {
		if err := mc.Step(); err != nil {
			fmt.Fprintf(os.Stderr, "emu816: %v\n", err)
			os.Exit(1)
		}
		totalCycles += mc.LastResult.Cycles
		if trace != nil {
			trace.Broadcast(mc)
		}
	}

	fmt.Printf("stopped after %d cycles\n", totalCycles)
}
