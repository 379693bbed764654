package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"sharpshots/game"
	"sharpshots/scores"
	"sharpshots/spectate"
)

func main() {
	seed := flag.Int64("seed", 0, "Random seed, 0 picks one (or set SHARPSHOTS_SEED)")
	frames := flag.Int("frames", 0, "Stop after this many frames, 0 runs until game over")
	name := flag.String("name", "autopilot", "Name recorded with the score")
	dbPath := flag.String("db", "", "SQLite score database (or set SHARPSHOTS_DB)")
	recordPath := flag.String("record", "", "Write a msgpack snapshot stream to this file")
	addr := flag.String("spectate", "", "Serve spectators on this address, e.g. :8080")
	every := flag.Int("every", 2, "Send every n-th frame to spectators")
	realtime := flag.Bool("realtime", false, "Pace frames at the tick rate")
	top := flag.Int("top", 10, "Print this many high scores after the run")
	flag.Parse()

	if *seed == 0 {
		if v := os.Getenv("SHARPSHOTS_SEED"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				log.Fatalf("Invalid SHARPSHOTS_SEED %q: %v", v, err)
			}
			*seed = n
		}
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *dbPath == "" {
		*dbPath = os.Getenv("SHARPSHOTS_DB")
	}

	config := game.DefaultConfig()
	config.Seed = *seed
	config.PlayerName = *name

	session := game.NewSession(config, nil, game.NewAutopilot())
	log.Printf("Starting headless run seed=%d frames=%d", *seed, *frames)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *recordPath != "" {
		f, err := os.Create(*recordPath)
		if err != nil {
			log.Fatalf("Failed to create recording: %v", err)
		}
		defer f.Close()

		rec := game.NewRecorder(f)
		session.AddSink(game.FrameSinkFunc(rec.Record))
		defer func() {
			if err := rec.Flush(); err != nil {
				log.Printf("Failed to flush recording: %v", err)
				return
			}
			log.Printf("Recorded %d frames to %s", rec.Count(), *recordPath)
		}()
	}

	if *addr != "" {
		hub := spectate.NewHub()
		hub.Every = *every
		go hub.Run(ctx)
		session.AddSink(hub)

		srv := &http.Server{Addr: *addr, Handler: spectate.Routes(hub)}
		go func() {
			log.Printf("Spectators can connect at ws://%s/ws", *addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("Spectator server error: %v", err)
			}
		}()
		defer func() {
			shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdown)
		}()
		// pace the run so viewers see it at game speed
		*realtime = true
	}

	if err := run(ctx, session, *frames, *realtime); err != nil {
		log.Printf("Run stopped: %v", err)
	}

	result := session.Result()
	log.Printf("Run finished: score=%.0f frames=%d lives=%d", result.Score, result.Frames, result.Lives)

	if *dbPath != "" {
		if err := saveScore(*dbPath, result, *top); err != nil {
			log.Printf("Failed to record score: %v", err)
		}
	}
}

// run steps the session until it ends, the frame limit is reached or ctx is done
func run(ctx context.Context, s *game.Session, frames int, realtime bool) error {
	var tick <-chan time.Time
	if realtime {
		t := time.NewTicker(time.Duration(s.Context().Config.FrameMillis() * float64(time.Millisecond)))
		defer t.Stop()
		tick = t.C
	}

	for i := 0; frames <= 0 || i < frames; i++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return ctx.Err()
		}

		if err := s.Step(); err != nil {
			if errors.Is(err, game.ErrGameOver) {
				return nil
			}
			return err
		}
	}
	return nil
}

func saveScore(path string, result game.Result, top int) error {
	store, err := scores.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	id, err := store.Save(ctx, result)
	if err != nil {
		return err
	}
	log.Printf("Score recorded as %s", id)

	rows, err := store.Top(ctx, top)
	if err != nil {
		return err
	}
	fmt.Println("High scores:")
	for i, r := range rows {
		fmt.Printf("%2d. %-12s %8.0f  seed %d  %s\n", i+1, r.Name, r.Score, r.Seed, r.CreatedAt.Format(time.DateTime))
	}
	return nil
}
