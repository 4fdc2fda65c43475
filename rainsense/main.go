package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/cgxeiji/rainsense"
	"github.com/cgxeiji/rainsense/config"
	"github.com/cgxeiji/rainsense/display"
)

func main() {
	path := flag.String("config", "rainsense.yaml", "configuration file")
	raw := flag.Bool("raw", false, "show unfiltered samples")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		log.Fatal(err)
	}

	sensor, err := rainsense.New(cfg.Options()...)
	if err != nil {
		log.Fatal(err)
	}
	defer sensor.Close()

	screen := display.NewConsole(os.Stdout)
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	t := time.NewTicker(cfg.Poll)
	defer t.Stop()

	read := sensor.Read
	if *raw {
		read = sensor.Raw
	}

	for {
		if err := poll(read, screen); err != nil {
			log.Fatal(err)
		}

		select {
		case <-t.C:
		case <-stop:
			return
		}
	}
}

// poll shows one reading. Read errors are logged and skipped; only display
// errors are returned.
func poll(read func() (byte, error), screen display.Display) error {
	v, err := read()
	switch {
	case errors.Is(err, rainsense.ErrStuck):
		log.Printf("%v (check the sensor wiring)", err)
	case err != nil:
		log.Printf("read: %v", err)
		return nil
	}
	return screen.Refresh(v)
}
