package main

import (
	"context"
	"errors"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/delaneyj/reactor/loop"
	"github.com/delaneyj/reactor/middleware"
	"github.com/delaneyj/reactor/reactor"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
)

const (
	incrementsKey = "increments"
	delayKey      = "delay"
	verboseKey    = "verbose"
)

type Counter struct {
	Count int
}

type Increment struct{ reactor.Marker }

type Add struct {
	reactor.Marker
	N int
}

func (c *Counter) Handle(e reactor.Event) {
	switch e := e.(type) {
	case Increment:
		c.Count++
	case Add:
		c.Count += e.N
	}
}

// view prints every state it is handed and stops the loop once the target
// count shows up.
type view struct {
	target int
	start  time.Time
	stop   context.CancelFunc
}

func (v *view) Update(c Counter) {
	log.Printf("view: count=%d after %s", c.Count, time.Since(v.start).Round(time.Microsecond))
	if c.Count >= v.target {
		v.stop()
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "counter",
		Usage: "Drive a counter reactor from a main loop",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  incrementsKey,
				Usage: "Number of increments performed up front",
				Value: 3,
			},
			&cli.DurationFlag{
				Name:  delayKey,
				Usage: "Delay before the deferred bonus event",
				Value: 100 * time.Millisecond,
			},
			&cli.BoolFlag{
				Name:  verboseKey,
				Usage: "Log every event with the state it produced",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	increments := int(cmd.Uint(incrementsKey))
	delay := cmd.Duration(delayKey)
	const bonus = 10

	stats := middleware.NewStats[Counter]()
	mws := []reactor.Middleware[Counter]{stats}
	if cmd.Bool(verboseKey) {
		mws = append(mws, middleware.NewLogger[Counter](nil))
	}

	ctx, cancel := context.WithTimeout(ctx, delay+5*time.Second)
	defer cancel()

	queue := loop.NewQueue()
	r := reactor.New(Counter{}, mws, reactor.WithExecutor(queue), reactor.WithOwnerCheck())

	v := &view{target: increments + bonus, start: time.Now(), stop: cancel}
	reactor.Add(r, v)

	for i := 0; i < increments; i++ {
		r.Perform(Increment{})
	}
	r.Emit(reactor.After[Counter](delay, Add{N: bonus}))

	err := queue.Run(ctx)
	// the reactor holds v weakly
	runtime.KeepAlive(v)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Printf("final count %d after %s events", r.State().Count, humanize.Comma(int64(stats.Total())))
	stats.Report(os.Stdout)
	return nil
}
