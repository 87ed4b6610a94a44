// Command paraxial traces an optical scenario and renders it.
//
// Usage
//
//	paraxial [-config scenario.toml] [-out diagram.png] [-strict]
//
// Without -config the built-in two-lens relay is traced. The per-ray sample
// table is printed to stdout; the diagram is written to the scenario's
// output path unless -out "" is given.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/katalvlaran/paraxial/render"
	"github.com/katalvlaran/paraxial/scenario"
	"github.com/katalvlaran/paraxial/tracer"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("paraxial: ")

	var (
		configPath = flag.String("config", "", "path to a TOML scenario (default: built-in relay)")
		out        = flag.String("out", "-", `PNG output path; "-" keeps the scenario's, "" disables rendering`)
		strict     = flag.Bool("strict", false, "trace each ray only through elements added after it")
		width      = flag.Int("width", 0, "image width in pixels (0 keeps the scenario's)")
		height     = flag.Int("height", 0, "image height in pixels (0 keeps the scenario's)")
	)
	flag.Parse()
	if flag.NArg() > 0 {
		log.Fatalf("unexpected arguments: %v", flag.Args())
	}

	conf := scenario.DefaultConfig()
	if *configPath != "" {
		var err error
		if conf, err = scenario.ParseFile(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *out != "-" {
		conf.Output = *out
	}
	if *strict {
		conf.Strict = true
	}
	if *width > 0 {
		conf.Width = *width
	}
	if *height > 0 {
		conf.Height = *height
	}

	if err := run(conf, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run builds, traces, reports and optionally renders conf.
func run(conf *scenario.Config, w io.Writer) error {
	s, err := conf.Build()
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	mode := tracer.AllElements
	if conf.Strict {
		mode = tracer.FromRayPosition
	}
	paths, err := tracer.Trace(s, tracer.WithMode(mode))
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}

	rays, elems := s.Len()
	log.Printf("%d rays, %d elements, length %g %s, mode %v", rays, elems, s.Cursor(), conf.Unit, mode)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ray\tz [%s]\theight [%s]\tangle [rad]\n", conf.Unit, conf.Unit)
	for i, p := range paths {
		for _, smp := range p.Samples {
			fmt.Fprintf(tw, "%d\t%.6g\t%.6g\t%.6g\n", i, smp.Z, smp.Height, smp.Angle)
		}
	}
	if err = tw.Flush(); err != nil {
		return err
	}

	if conf.Output == "" {
		return nil
	}
	opts := render.DefaultOptions()
	opts.Width, opts.Height = conf.Width, conf.Height
	if err = render.SaveFile(conf.Output, s, paths, opts); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	log.Printf("wrote %s", conf.Output)

	return nil
}
