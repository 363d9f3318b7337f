// Command imgfilter applies a TOML-configured filter pipeline to an image.
//
// Example pipeline file:
//
//	workers = 4
//
//	[[filter]]
//	type = "crop"
//	left = 10
//	top = 10
//	width = 400
//	height = 300
//
//	[[filter]]
//	type = "gaussian"
//	radius = 2.5
//
//	[[filter]]
//	type = "sobel"
//
// Supported filter types: crop, gaussian, box, sharpen, laplacian, sobel,
// prewitt. Input and output formats (by extension): png, jpg/jpeg, bmp,
// tif/tiff.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/imgproc"
)

type pipelineConfig struct {
	Workers int            `toml:"workers"`
	Filter  []filterConfig `toml:"filter"`
}

type filterConfig struct {
	Type   string  `toml:"type"`
	Radius float64 `toml:"radius"`
	Left   int     `toml:"left"`
	Top    int     `toml:"top"`
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
}

func main() {
	var (
		input  = flag.String("input", "", "input image (png, jpeg, bmp, tiff)")
		output = flag.String("output", "out.png", "output image")
		config = flag.String("config", "", "TOML pipeline configuration file")
	)
	flag.Parse()

	if *input == "" || *config == "" {
		flag.Usage()
		os.Exit(2)
	}

	var cfg pipelineConfig
	if _, err := toml.DecodeFile(*config, &cfg); err != nil {
		log.Fatalf("Couldn't read pipeline config: %v", err)
	}

	pipeline, err := buildPipeline(cfg)
	if err != nil {
		log.Fatalf("Invalid pipeline: %v", err)
	}

	img, err := decodeFile(*input)
	if err != nil {
		log.Fatalf("Couldn't decode %s: %v", *input, err)
	}

	frame := imgproc.FromImage(img)
	for i, p := range pipeline {
		frame, err = imgproc.Run(p, frame)
		if err != nil {
			log.Fatalf("Filter %d (%s) failed: %v", i, cfg.Filter[i].Type, err)
		}
	}

	if err := encodeFile(*output, frame.ToImage()); err != nil {
		log.Fatalf("Couldn't encode %s: %v", *output, err)
	}

	log.Printf("Wrote %s (%dx%d, %d filters)\n",
		*output, frame.Width(), frame.Height(), len(pipeline))
}

// buildPipeline translates the config into concrete processors.
func buildPipeline(cfg pipelineConfig) ([]imgproc.Processor, error) {
	var opts []imgproc.Option
	if cfg.Workers > 0 {
		opts = append(opts, imgproc.WithWorkers(cfg.Workers))
	}

	pipeline := make([]imgproc.Processor, 0, len(cfg.Filter))
	for i, f := range cfg.Filter {
		p, err := buildFilter(f, opts)
		if err != nil {
			return nil, fmt.Errorf("filter %d: %w", i, err)
		}
		pipeline = append(pipeline, p)
	}
	return pipeline, nil
}

func buildFilter(f filterConfig, opts []imgproc.Option) (imgproc.Processor, error) {
	switch f.Type {
	case "crop":
		return imgproc.NewCrop(imgproc.Rect(f.Left, f.Top, f.Width, f.Height), opts...)
	case "gaussian":
		return imgproc.NewGaussianBlur(f.Radius, opts...), nil
	case "box":
		return imgproc.NewConvolution(imgproc.BoxKernel(int(f.Radius)), opts...)
	case "sharpen":
		return imgproc.NewConvolution(imgproc.SharpenKernel(), opts...)
	case "laplacian":
		return imgproc.NewConvolution(imgproc.LaplacianKernel(), opts...)
	case "sobel":
		return imgproc.NewSobel(opts...), nil
	case "prewitt":
		return imgproc.NewEdgeDetector(imgproc.PrewittKernelX(), imgproc.PrewittKernelY(), opts...)
	default:
		return nil, fmt.Errorf("unknown filter type %q", f.Type)
	}
}

// decodeFile reads an image in any registered format. Importing the bmp
// and tiff packages registers them alongside stdlib png and jpeg.
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	return img, err
}

// encodeFile writes the image in the format implied by the file extension.
func encodeFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(f, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, nil)
	case ".bmp":
		return bmp.Encode(f, img)
	case ".tif", ".tiff":
		return tiff.Encode(f, img, nil)
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
}
