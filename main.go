package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cwsl/sstv_challenger/channel"
	"github.com/cwsl/sstv_challenger/sstv"
)

/*
 * PD120 SSTV signal generator and channel simulator
 *
 * Encodes a raster image as a PD120 transmission, pushes the audio
 * through a simulated HF channel (drift, carrier offset, fading, AWGN,
 * impulse noise) and writes WAV plus raw float32 output for exercising
 * an independent SSTV decoder.
 */

// Global debug flag
var DebugMode bool

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file (optional)")
	inPath := flag.String("in", "", "Input image; must match the mode dimensions exactly")
	wavPath := flag.String("wav", "", "WAV output path (overrides config)")
	rawPath := flag.String("raw", "", "Raw float32 output path (overrides config)")
	clean := flag.Bool("clean", false, "Skip channel impairments and emit the clean signal")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -in image.png [-config config.yaml] [-wav out.wav] [-raw out.raw] [-clean]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	config, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("[Config] %v", err)
	}
	if *wavPath != "" {
		config.Output.WAVPath = *wavPath
	}
	if *rawPath != "" {
		config.Output.RawPath = *rawPath
	}
	DebugMode = *debug || config.Logging.Debug

	if err := run(config, *inPath, *clean); err != nil {
		log.Fatalf("[SSTV] %v", err)
	}
}

func run(config *Config, inPath string, clean bool) error {
	mode := sstv.ModeByShortName(config.Mode)
	if mode == nil {
		return fmt.Errorf("unknown SSTV mode %q", config.Mode)
	}
	log.Printf("[SSTV] Mode %s: %dx%d, VIS %d", mode.Name, mode.ImgWidth, mode.ImgHeight, mode.VIS)

	img, err := LoadImage(inPath, mode)
	if err != nil {
		return err
	}

	y, cr, cb := sstv.ConvertPlanes(img)

	tones, err := sstv.Encode(mode, y, cr, cb)
	if err != nil {
		return err
	}
	log.Printf("[SSTV] Encoded %d tone segments, %.2f s of signal",
		len(tones), sstv.TotalDuration(tones)/1000.0)

	waveform, err := sstv.Synthesize(tones, config.Audio.SampleRate, config.Audio.Amplitude)
	if err != nil {
		return err
	}
	if DebugMode {
		log.Printf("[SSTV] Synthesized %d samples at %g Hz", len(waveform), config.Audio.SampleRate)
	}

	if !clean && config.Impairments.Enabled {
		params := channel.Params{
			DriftPPM:           config.Impairments.DriftPPM,
			OffsetHz:           config.Impairments.OffsetHz,
			FadingSpeedHz:      config.Impairments.FadingSpeed,
			FadingDepth:        config.Impairments.FadingDepth,
			NoiseEnabled:       config.Impairments.NoiseEnabled,
			SNRdB:              config.Impairments.SNRdB,
			ImpulseProbability: config.Impairments.ImpulseProbability,
			Seed:               config.Impairments.Seed,
		}
		log.Printf("[Channel] Applying impairments: drift=%g ppm, offset=%g Hz, fading=%g Hz/%g, SNR=%g dB, impulse p=%g",
			params.DriftPPM, params.OffsetHz, params.FadingSpeedHz, params.FadingDepth,
			params.SNRdB, params.ImpulseProbability)

		waveform, err = channel.Apply(waveform, params, config.Audio.SampleRate)
		if err != nil {
			return err
		}
	} else {
		log.Printf("[Channel] Impairments disabled, emitting clean signal")
		waveform = channel.Clip(waveform)
	}

	if err := WriteWAV(config.Output.WAVPath, waveform, int(config.Audio.SampleRate)); err != nil {
		return err
	}
	log.Printf("[Output] Wrote %s (%d samples)", config.Output.WAVPath, len(waveform))

	if err := WriteRaw(config.Output.RawPath, waveform); err != nil {
		return err
	}
	log.Printf("[Output] Wrote %s (%d samples + %d pad)", config.Output.RawPath, len(waveform), rawPadSamples)

	return nil
}
