package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-sparkle/internal/anim"
	"github.com/coreman2200/funtimes-sparkle/internal/config"
	"github.com/coreman2200/funtimes-sparkle/internal/engine"
	"github.com/coreman2200/funtimes-sparkle/internal/led"
	"github.com/coreman2200/funtimes-sparkle/internal/pixel"
	"github.com/coreman2200/funtimes-sparkle/internal/ws"
)

func main() {
	// ---- Flags (config.yaml can override most) ----
	var (
		pixels     = flag.Int("pixels", 50, "number of LEDs on the strip")
		channels   = flag.Int("channels", 3, "bytes per pixel: 3=RGB, 4=RGBW")
		driver     = flag.String("driver", "spi", "driver: spi | screen | sim")
		addr       = flag.String("addr", "", "preview HTTP listen address (empty disables)")
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Load config.yaml (optional) ----
	var cfg *config.Config
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
	} else {
		cfg = c
	}

	// ---- Effective params (config overrides flags where set) ----
	ePixels, eChannels := *pixels, *channels
	eDriver, eAddr := *driver, *addr
	spiPort := ""
	loop := true
	var playlist []config.Anim
	if cfg != nil {
		if cfg.Pixels > 0 {
			ePixels = cfg.Pixels
		}
		if cfg.Channels > 0 {
			eChannels = cfg.Channels
		}
		if cfg.Driver != "" {
			eDriver = cfg.Driver
		}
		if cfg.PreviewAddr != "" {
			eAddr = cfg.PreviewAddr
		}
		spiPort = cfg.SPI.Port
		loop = cfg.Loop
		playlist = cfg.Playlist
	}
	if len(playlist) == 0 {
		playlist = defaultPlaylist()
	}

	// ---- Output driver ----
	var out led.Driver
	switch eDriver {
	case "spi":
		drv, err := led.NewNRZ(spiPort, ePixels, eChannels)
		if err != nil {
			log.Warn().Err(err).Str("driver", "spi").Msg("SPI init failed; falling back to screen")
			out = led.NewScreen(ePixels)
		} else {
			out = drv
		}
	case "screen":
		out = led.NewScreen(ePixels)
	case "sim":
		out = led.NewSim()
	default:
		log.Warn().Str("driver", eDriver).Msg("unknown driver; using sim")
		out = led.NewSim()
	}

	// ---- Optional websocket preview, fanned out next to the hardware ----
	var srv *http.Server
	if eAddr != "" {
		preview := ws.NewPreview()
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", preview.HandleFrames)
		mux.HandleFunc("/health", preview.HandleHealth)
		srv = &http.Server{
			Addr:         eAddr,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
		go func() {
			log.Info().Str("addr", eAddr).Msg("preview server starting")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatal().Err(err).Msg("preview server crashed")
			}
		}()
		out = led.Fanout{out, preview}
	}

	// ---- Strip + animations ----
	strip, err := pixel.NewStrip(ePixels, eChannels, out)
	if err != nil {
		log.Fatal().Err(err).Msg("strip setup failed")
	}
	entries := make([]engine.Entry, 0, len(playlist))
	for _, a := range playlist {
		an, err := buildAnimation(strip, a)
		if err != nil {
			log.Fatal().Err(err).Str("effect", a.Effect).Msg("animation setup failed")
		}
		entries = append(entries, engine.Entry{Anim: an, HoldS: a.HoldS})
	}
	pl := engine.NewPlaylist(loop)
	if err := pl.Load(entries); err != nil {
		log.Fatal().Err(err).Msg("playlist load failed")
	}

	// ---- Run until signalled ----
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner := engine.NewRunner(pl, log.Logger)
	if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("animation loop stopped")
	}

	if srv != nil {
		_ = srv.Close()
	}
	if err := out.Close(); err != nil {
		log.Warn().Err(err).Msg("driver close failed")
	}
}

func buildAnimation(strip *pixel.Strip, a config.Anim) (anim.Animation, error) {
	c, err := a.ParseColor()
	if err != nil {
		return nil, err
	}
	switch a.Effect {
	case "sparkle":
		return anim.NewSparkle(strip, anim.SparkleOpts{
			Color:       c,
			Interval:    a.Interval(),
			NumSparkles: a.NumSparkles,
			Name:        a.Name,
		})
	case "sparkle_pulse":
		return anim.NewSparklePulse(strip, anim.SparklePulseOpts{
			Color:        c,
			Interval:     a.Interval(),
			Period:       a.PeriodS,
			MinIntensity: a.MinIntensity,
			MaxIntensity: a.MaxIntensity,
			Name:         a.Name,
		})
	default:
		return nil, fmt.Errorf("unknown effect %q", a.Effect)
	}
}

func defaultPlaylist() []config.Anim {
	return []config.Anim{
		{Effect: "sparkle", Color: "#ff9911", IntervalMs: 100, NumSparkles: 3, HoldS: 20},
		{Effect: "sparkle_pulse", Color: "#1199ff", IntervalMs: 50, PeriodS: 5, MaxIntensity: 1, HoldS: 20},
	}
}
