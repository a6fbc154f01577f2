// Command wtgen builds a wavetable and writes it as a mono 32-bit float WAV.
//
// Usage:
//
//	wtgen [flags]
//
// One of -shape, -formula, -harmonics or -image selects the first frame
// (default: sine). With -frames > 1 the frame is duplicated across the table;
// an -end-* flag replaces the final frame and morphs the interior into a
// linear blend between the endpoints.
//
// Examples:
//
//	wtgen -o table.wav
//	wtgen -formula "sin(x) + 0.3*sin(3*x)" -o formula.wav
//	wtgen -harmonics 1,0.5,0.25 -frames 8 -end-shape saw -o morph.wav
//	wtgen -image gradient.png -analyze
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-wavetable/encode"
	"github.com/cwbudde/algo-wavetable/generate"
	"github.com/cwbudde/algo-wavetable/wavetable"
)

func main() {
	var (
		shape     = flag.String("shape", "", "start frame shape: sine or saw")
		formula   = flag.String("formula", "", "start frame formula over x, t, i, n")
		harmonics = flag.String("harmonics", "", "start frame partial amplitudes, comma-separated")
		imagePath = flag.String("image", "", "start frame from image luminance (png or jpeg)")

		endShape     = flag.String("end-shape", "", "end frame shape: sine or saw")
		endFormula   = flag.String("end-formula", "", "end frame formula")
		endHarmonics = flag.String("end-harmonics", "", "end frame partial amplitudes")

		frames  = flag.Int("frames", 1, "number of frames in the table")
		analyze = flag.Bool("analyze", false, "print the harmonic content of the start frame")
		out     = flag.String("o", "", "output WAV file")
	)
	flag.Parse()

	if err := run(*shape, *formula, *harmonics, *imagePath,
		*endShape, *endFormula, *endHarmonics, *frames, *analyze, *out); err != nil {
		fmt.Fprintln(os.Stderr, "wtgen:", err)
		os.Exit(1)
	}
}

func run(shape, formula, harmonics, imagePath,
	endShape, endFormula, endHarmonics string,
	frames int, analyze bool, out string,
) error {
	if frames < 1 || frames > wavetable.MaxFrames {
		return fmt.Errorf("frames must be in [1, %d]: %d", wavetable.MaxFrames, frames)
	}

	start, err := buildFrame(shape, formula, harmonics, imagePath)
	if err != nil {
		return err
	}

	tbl := wavetable.NewTable(wavetable.WithInitialFrame(start))
	for tbl.Len() < frames {
		if err := tbl.Add(); err != nil {
			return err
		}
	}

	if endShape != "" || endFormula != "" || endHarmonics != "" {
		end, err := buildFrame(endShape, endFormula, endHarmonics, "")
		if err != nil {
			return err
		}
		if err := tbl.ReplaceCurrent(end); err != nil {
			return err
		}
		if tbl.Len() >= 3 {
			if err := tbl.Morph(); err != nil {
				return err
			}
		}
	}

	if analyze {
		if err := printHarmonics(os.Stdout, start); err != nil {
			return err
		}
	}

	if out != "" {
		data, err := encode.WAV(tbl.Frames())
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s: %d frames, %d bytes\n", out, tbl.Len(), len(data))
	}
	return nil
}

// buildFrame resolves the generator flags in priority order. With no flag set
// it falls back to a sine frame, matching the editor's default.
func buildFrame(shape, formula, harmonics, imagePath string) (wavetable.Frame, error) {
	switch {
	case shape != "":
		switch shape {
		case "sine":
			return generate.Sine(), nil
		case "saw":
			return generate.Saw(), nil
		}
		return nil, fmt.Errorf("unknown shape %q (want sine or saw)", shape)

	case formula != "":
		f, err := generate.FromFormula(formula)
		if err != nil {
			// The generator already fell back to sine; the error is only
			// informational for interactive use, but a CLI should fail loud.
			return nil, err
		}
		return f, nil

	case harmonics != "":
		amps, err := parseAmplitudes(harmonics)
		if err != nil {
			return nil, err
		}
		return generate.FromHarmonics(amps)

	case imagePath != "":
		row, err := loadLuminanceRow(imagePath)
		if err != nil {
			return nil, err
		}
		return generate.FromLuminance(row)
	}
	return generate.Sine(), nil
}

func parseAmplitudes(csv string) ([]float64, error) {
	parts := strings.Split(csv, ",")
	amps := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("harmonic amplitude %q: %w", p, err)
		}
		amps = append(amps, v)
	}
	return amps, nil
}

// loadLuminanceRow decodes an image and resamples its middle row to one
// luminance value per wavetable sample, in [0, 255].
func loadLuminanceRow(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, fmt.Errorf("image %s is empty", path)
	}

	y := bounds.Min.Y + bounds.Dy()/2
	row := make([]float64, wavetable.FrameSize)
	for i := range row {
		x := bounds.Min.X + i*bounds.Dx()/wavetable.FrameSize
		r, g, b, _ := img.At(x, y).RGBA()
		row[i] = 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
	}
	return row, nil
}

func printHarmonics(w *os.File, f wavetable.Frame) error {
	amps, err := generate.AnalyzeHarmonics(f)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "harmonic\tamplitude")
	for h, amp := range amps {
		fmt.Fprintf(tw, "%d\t%.4f\n", h+1, amp)
	}
	return tw.Flush()
}
