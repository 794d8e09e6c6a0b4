package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/mkenney-dev/aworld/internal/engine"
	"github.com/mkenney-dev/aworld/internal/gamepart"
	"github.com/mkenney-dev/aworld/internal/host"
	"github.com/mkenney-dev/aworld/internal/host/ebitenhost"
	"github.com/mkenney-dev/aworld/internal/host/headless"
	"github.com/mkenney-dev/aworld/internal/host/noaudio"
	"github.com/mkenney-dev/aworld/internal/host/otoaudio"
	"github.com/mkenney-dev/aworld/internal/input"
	"github.com/mkenney-dev/aworld/internal/registers"
	"github.com/mkenney-dev/aworld/internal/resource"
	"github.com/mkenney-dev/aworld/internal/video"
)

var (
	runHeadless bool
	runMute     bool
	runPart     string
	runScale    int
)

// runCmd builds every VM collaborator from a game-data directory and
// runs the tic loop until the host closes or the process is signaled.
var runCmd = &cobra.Command{
	Use:   "run <game-data-dir>",
	Short: "run the Another World VM against a game-data directory",
	Args:  cobra.ExactArgs(1),
	Run:   runVM,
}

func init() {
	runCmd.Flags().BoolVar(&runHeadless, "headless", false, "run without a presentation window, discarding frames")
	runCmd.Flags().BoolVar(&runMute, "mute", false, "disable audio output")
	runCmd.Flags().StringVar(&runPart, "part", "copy_protection", "starting game part")
	runCmd.Flags().IntVar(&runScale, "scale", 3, "window scale factor for the ebiten host")
}

func runVM(cmd *cobra.Command, args []string) {
	dataDir := args[0]

	part, err := gamepart.ByName(runPart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aworld: unknown --part %q: %v\n", runPart, err)
		os.Exit(1)
	}

	reader, err := resource.LoadFixtureDir(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aworld: loading game data from %q: %v\n", dataDir, err)
		os.Exit(1)
	}

	var surface interface {
		video.Presenter
		host.InputSource
	}
	if runHeadless {
		surface = headless.New()
	} else {
		surface = ebitenhost.New(runScale)
	}

	var audio host.AudioPlayer
	if runMute {
		audio = noaudio.New()
	} else {
		player, err := otoaudio.New()
		if err != nil {
			log.Printf("aworld: audio init failed, falling back to --mute: %v", err)
			audio = noaudio.New()
		} else {
			audio = player
		}
	}

	d := engine.New(registers.New(), resource.New(reader), video.NewEngine(surface), audio, video.DefaultFont(), video.StringTable{})
	if err := d.LoadPart(part); err != nil {
		fmt.Fprintf(os.Stderr, "aworld: loading starting part %v: %v\n", part, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())

	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigQuit
		cancel()
	}()

	go runTics(ctx, d, surface)

	if !runHeadless {
		if err := ebiten.RunGame(surface.(ebiten.Game)); err != nil {
			log.Printf("aworld: ebiten exited: %v", err)
		}
	} else {
		<-ctx.Done()
	}

	cancel()
}

// runTics drives the VM's tic loop at a fixed host cadence, polling
// input and feeding it to the driver each tic, until ctx is canceled.
func runTics(ctx context.Context, d *engine.Driver, in host.InputSource) {
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			up, down, left, right, action, lastKey, showPassword := in.Poll()
			snapshot := input.Snapshot{
				Up: up, Down: down, Left: left, Right: right,
				Action:       action,
				LastKey:      lastKey,
				ShowPassword: showPassword,
			}
			if err := d.RunTic(snapshot); err != nil {
				log.Printf("aworld: tic error: %v", err)
				return
			}
		}
	}
}
