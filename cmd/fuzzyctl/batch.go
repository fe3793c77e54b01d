// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvfuzzy/inference"
)

func batchCmd(a *app) *cobra.Command {
	var (
		inputPath   string
		outputPath  string
		workers     int
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Infer outputs for every row of a CSV file",
		Long: `Batch reads a CSV whose header names input variables and writes a
CSV with one column per output variable plus an "error" column. Rows are
independent: a failing row is reported in its error column and does not
stop the batch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []inference.Option{inference.WithWorkers(workers)}
			if metricsAddr != "" {
				reg := prometheus.NewRegistry()
				reg.MustRegister(collectors.NewGoCollector())
				stop, err := serveMetrics(metricsAddr, reg, a.log)
				if err != nil {
					return err
				}
				defer stop()
				opts = append(opts, inference.WithRegisterer(reg))
			}
			eng, err := a.engine(opts...)
			if err != nil {
				return err
			}

			in, closeIn, err := openInput(inputPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer closeIn()
			rows, rowErrs, err := readRows(in)
			if err != nil {
				return err
			}

			start := time.Now()
			results := inferRows(cmd.Context(), eng, rows, rowErrs)

			out := cmd.OutOrStdout()
			if outputPath != "" && outputPath != "-" {
				f, err := os.Create(outputPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			failed, err := writeResults(out, eng.Outputs(), results)
			if err != nil {
				return err
			}
			a.log.Info("batch finished",
				zap.Int("rows", len(results)),
				zap.Int("failed", failed),
				zap.Duration("elapsed", time.Since(start)),
			)
			return cmd.Context().Err()
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "-", "Input CSV (- for stdin)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "-", "Output CSV (- for stdout)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent rows (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while the batch runs")

	return cmd
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}

// readRows parses the CSV into one input map per record. A malformed cell
// marks its row as failed instead of aborting the whole file.
func readRows(r io.Reader) ([]map[string]float64, []error, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]float64
	var errs []error
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("csv: %w", err)
		}
		row := make(map[string]float64, len(header))
		var rowErr error
		for i, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				rowErr = fmt.Errorf("line %d column %q: %w", line, header[i], err)
				break
			}
			row[header[i]] = v
		}
		rows = append(rows, row)
		errs = append(errs, rowErr)
	}

	return rows, errs, nil
}

// inferRows runs the engine on the rows that parsed and reports the parse
// error for the rest, so unreadable rows never reach the engine metrics.
func inferRows(ctx context.Context, eng *inference.Engine, rows []map[string]float64, rowErrs []error) []inference.Result {
	results := make([]inference.Result, len(rows))
	valid := make([]map[string]float64, 0, len(rows))
	idx := make([]int, 0, len(rows))
	for i, row := range rows {
		if rowErrs[i] != nil {
			results[i] = inference.Result{Err: rowErrs[i]}
			continue
		}
		valid = append(valid, row)
		idx = append(idx, i)
	}
	for j, res := range eng.InferBatch(ctx, valid) {
		results[idx[j]] = res
	}

	return results
}

func writeResults(w io.Writer, outputs []string, results []inference.Result) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(append(append([]string(nil), outputs...), "error")); err != nil {
		return 0, err
	}
	failed := 0
	rec := make([]string, len(outputs)+1)
	for _, res := range results {
		for i, name := range outputs {
			rec[i] = ""
			if v, ok := res.Outputs[name]; ok {
				rec[i] = strconv.FormatFloat(v, 'f', 4, 64)
			}
		}
		rec[len(outputs)] = ""
		if res.Err != nil {
			failed++
			rec[len(outputs)] = strings.ReplaceAll(res.Err.Error(), "\n", "; ")
		}
		if err := cw.Write(rec); err != nil {
			return failed, err
		}
	}
	cw.Flush()

	return failed, cw.Error()
}

// serveMetrics exposes reg on addr/metrics until the returned stop is called.
func serveMetrics(addr string, reg *prometheus.Registry, log *zap.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("--metrics-addr: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to serve metrics", zap.Error(err))
		}
	}()
	log.Info("serving metrics", zap.Stringer("addr", ln.Addr()))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
