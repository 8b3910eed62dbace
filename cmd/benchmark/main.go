package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/reactor/loop"
	"github.com/delaneyj/reactor/reactor"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	configKey  = "config"
	profileKey = "profile"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure perform and notification latency of a reactor",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  configKey,
				Usage: "YAML file with the subscriber/middleware matrix",
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
			},
		},
		Action: benchmark,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func benchmark(ctx context.Context, cmd *cli.Command) error {
	cfg := defaultConfig()
	if path := cmd.String(configKey); path != "" {
		var err error
		if cfg, err = loadConfig(path); err != nil {
			return err
		}
	}

	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchmarkReactor(cfg, false)
	benchmarkReactor(cfg, true)
	return nil
}

type Counter struct {
	Count int
}

type Increment struct{ reactor.Marker }

func (c *Counter) Handle(e reactor.Event) {
	if _, ok := e.(Increment); ok {
		c.Count++
	}
}

type sink struct {
	last int
}

func (s *sink) Update(c Counter) {
	s.last = c.Count
}

func benchmarkReactor(cfg config, shouldRender bool) {
	perform := table.NewWriter()
	perform.SetTitle("Perform")
	perform.SetOutputMirror(os.Stdout)
	perform.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	delivery := table.NewWriter()
	delivery.SetTitle("Perform + delivery")
	delivery.SetOutputMirror(os.Stdout)
	delivery.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, m := range cfg.Middleware {
		for _, s := range cfg.Subscribers {
			mws := make([]reactor.Middleware[Counter], m)
			for i := range mws {
				mws[i] = reactor.MiddlewareFunc[Counter](func(reactor.Event, Counter) {})
			}

			queue := loop.NewQueue()
			r := reactor.New(Counter{}, mws, reactor.WithExecutor(queue))

			// subscribers are weak, keep them reachable for the whole run
			sinks := make([]*sink, s)
			for i := range sinks {
				sinks[i] = &sink{}
				reactor.Add(r, sinks[i])
			}

			performTach := tachymeter.New(&tachymeter.Config{Size: cfg.Iterations})
			deliveryTach := tachymeter.New(&tachymeter.Config{Size: cfg.Iterations})
			for i := 0; i < cfg.Iterations; i++ {
				start := time.Now()
				r.Perform(Increment{})
				performTach.AddTime(time.Since(start))
				queue.Drain()
				deliveryTach.AddTime(time.Since(start))
			}

			for _, sk := range sinks {
				if sk.last != cfg.Iterations {
					log.Panicf("sink saw %d, want %d", sk.last, cfg.Iterations)
				}
			}

			name := fmt.Sprintf("middleware: %d, subscribers: %d", m, s)
			perform.AppendRow(row(name, performTach.Calc()))
			delivery.AppendRow(row(name, deliveryTach.Calc()))
		}
	}

	if shouldRender {
		perform.Render()
		delivery.Render()
	}
}

func row(name string, calc *tachymeter.Metrics) table.Row {
	return table.Row{
		name,
		calc.Time.Avg,
		calc.Time.Min,
		calc.Time.P75,
		calc.Time.P99,
		calc.Time.Max,
	}
}
