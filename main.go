package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"runtime/pprof"
	"time"

	"github.com/kavanaugh-render/pathtracer/internal/scenes"
	"github.com/kavanaugh-render/pathtracer/pkg/camera"
	"github.com/kavanaugh-render/pathtracer/pkg/dispatch"
	"github.com/kavanaugh-render/pathtracer/pkg/integrator"
	"github.com/kavanaugh-render/pathtracer/pkg/renderlog"
	"github.com/kavanaugh-render/pathtracer/pkg/sensor"
)

// Config holds all the configuration for the path tracer's CLI.
type Config struct {
	Scene           string
	Width           int
	Height          int
	SPP             int
	MaxBounce       int
	RussianRoulette int
	Workers         int
	Out             string
	CPUProfile      string
	Help            bool
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	logger := renderlog.NewDefaultLogger()

	if config.CPUProfile != "" {
		f, err := os.Create(config.CPUProfile)
		if err != nil {
			fmt.Printf("could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	scene, err := scenes.Build(config.Scene)
	if err != nil {
		fmt.Printf("error building scene: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("starting render: scene=%s %dx%d spp=%d workers=%d", config.Scene, config.Width, config.Height, config.SPP, config.Workers)
	start := time.Now()

	sens := sensor.NewSensor(config.Width, config.Height)
	cam := camera.NewPinholeCamera(sens, 60)
	pt := integrator.NewPathIntegrator(config.MaxBounce, config.RussianRoulette)

	stats := dispatch.Render(sens, cam, scene, pt, config.SPP, config.Workers)

	logger.Printf("render completed in %v (%d pixels, %d samples/px, %d total samples, %d workers)",
		time.Since(start), stats.TotalPixels, stats.SamplesPerPixel, stats.TotalSamples, stats.Workers)

	if err := writePNG(config.Out, sens); err != nil {
		fmt.Printf("error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("render saved as %s\n", config.Out)
}

// parseFlags parses command line flags and returns configuration.
func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.Scene, "scene", "default", "Built-in scene to render")
	flag.IntVar(&config.Width, "width", 400, "Image width in pixels")
	flag.IntVar(&config.Height, "height", 300, "Image height in pixels")
	flag.IntVar(&config.SPP, "spp", 64, "Samples per pixel")
	flag.IntVar(&config.MaxBounce, "max-bounce", 8, "Maximum number of bounces per path")
	flag.IntVar(&config.RussianRoulette, "russian-roulette", 4, "Bounce index after which Russian roulette termination begins")
	flag.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.StringVar(&config.Out, "out", "render.png", "Output PNG path")
	flag.StringVar(&config.CPUProfile, "cpuprofile", "", "Write CPU profile to file")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()
	return config
}

// showHelp displays help information.
func showHelp() {
	fmt.Println("pathtracer - offline Monte-Carlo path-tracing renderer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	for _, name := range scenes.Names {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  pathtracer -scene=cornell -spp=256 -workers=8 -out=cornell.png")
}

// writePNG quantizes the sensor and writes it as a PNG file.
func writePNG(path string, sens *sensor.Sensor) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	bytes := sens.Bytes()
	img := image.NewRGBA(image.Rect(0, 0, sens.Width, sens.Height))
	for j := 0; j < sens.Height; j++ {
		for i := 0; i < sens.Width; i++ {
			idx := (j*sens.Width + i) * 3
			img.Set(i, j, color.RGBA{R: bytes[idx], G: bytes[idx+1], B: bytes[idx+2], A: 255})
		}
	}

	return png.Encode(f, img)
}
