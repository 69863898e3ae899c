// Copyright 2023 Vellum Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// aggtool inspects the aggregation target-type rules: resolve one
// (element type, kind) pair, or print the whole legality matrix.
//
// usage:
//
//	aggtool -type int32 -kind sum
//	aggtool -kind quantile -type float32 -quantiles 0.25,0.5 -interp linear
//	aggtool -matrix
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/vellumdb/vellum/pkg/config"
	"github.com/vellumdb/vellum/pkg/container/types"
	"github.com/vellumdb/vellum/pkg/logutil"
	"github.com/vellumdb/vellum/pkg/sql/colexec/agg"
)

var (
	configFile = flag.String("cfg", "", "toml configuration file")
	typeName   = flag.String("type", "", "element type name, e.g. int32")
	kindName   = flag.String("kind", "", "aggregation kind name, e.g. sum")
	quantiles  = flag.String("quantiles", "", "comma separated fractions for -kind quantile")
	interp     = flag.String("interp", "linear", "interpolation mode for -kind quantile")
	matrix     = flag.Bool("matrix", false, "print the full (type, kind) legality matrix")
)

func main() {
	flag.Parse()

	if *configFile != "" {
		cfg, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		logutil.SetupGlobalLogger(cfg.Log)
	}

	if *matrix {
		printMatrix()
		return
	}
	if err := resolveOne(); err != nil {
		logutil.Error("resolve failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolveOne() error {
	oid, err := lookupType(*typeName)
	if err != nil {
		return err
	}
	a, err := buildAggregation(*kindName)
	if err != nil {
		return err
	}

	out, err := agg.OutputType(a, oid.ToType())
	if err != nil {
		return err
	}
	logutil.Debug("resolved",
		zap.String("type", oid.String()),
		zap.String("kind", a.AggKind().String()),
		zap.String("target", out.String()))
	fmt.Printf("%s(%s) -> %s\n", a.AggKind(), oid, out)
	return nil
}

func printMatrix() {
	kinds := []agg.Kind{
		agg.Sum, agg.Min, agg.Max, agg.Count, agg.Mean,
		agg.Median, agg.Quantile, agg.ArgMin, agg.ArgMax,
	}
	fmt.Printf("%-10s", "type")
	for _, k := range kinds {
		fmt.Printf(" %-9s", k)
	}
	fmt.Println()
	for _, oid := range types.AllTypes {
		fmt.Printf("%-10s", oid)
		for _, k := range kinds {
			if typ, ok := agg.TargetType(oid.ToType(), k); ok {
				fmt.Printf(" %-9s", typ)
			} else {
				fmt.Printf(" %-9s", "-")
			}
		}
		fmt.Println()
	}
}

func lookupType(name string) (types.T, error) {
	for _, oid := range types.AllTypes {
		if oid.String() == name {
			return oid, nil
		}
	}
	return types.T_any, fmt.Errorf("unknown element type %q", name)
}

func buildAggregation(name string) (agg.Aggregation, error) {
	switch name {
	case "sum":
		return agg.NewSum(), nil
	case "min":
		return agg.NewMin(), nil
	case "max":
		return agg.NewMax(), nil
	case "count":
		return agg.NewCount(), nil
	case "mean":
		return agg.NewMean(), nil
	case "median":
		return agg.NewMedian(), nil
	case "argmin":
		return agg.NewArgMin(), nil
	case "argmax":
		return agg.NewArgMax(), nil
	case "quantile":
		qs, err := parseQuantiles(*quantiles)
		if err != nil {
			return nil, err
		}
		mode, err := parseInterpolation(*interp)
		if err != nil {
			return nil, err
		}
		return agg.NewQuantile(qs, mode)
	}
	return nil, fmt.Errorf("unknown aggregation kind %q", name)
}

func parseQuantiles(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	qs := make([]float64, 0, len(parts))
	for _, p := range parts {
		q, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad quantile fraction %q", p)
		}
		qs = append(qs, q)
	}
	return qs, nil
}

func parseInterpolation(s string) (agg.Interpolation, error) {
	for _, mode := range []agg.Interpolation{
		agg.Nearest, agg.Linear, agg.Lower, agg.Higher, agg.Midpoint,
	} {
		if mode.String() == s {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown interpolation mode %q", s)
}
