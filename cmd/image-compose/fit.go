package main

import (
	"fmt"
	"image"
	"log"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/ironsheep/image-compose-mcp/internal/compose"
	"github.com/ironsheep/image-compose-mcp/internal/imaging"
	"github.com/spf13/cobra"
)

var fitRegion string
var fitAlign string
var fitValign string
var fitPadding int
var fitAllowUpscale bool
var fitKeepAlpha bool
var fitOverlay string

var fitCmd = &cobra.Command{
	Use:   "fit [canvas] [content] [output]",
	Short: "Fit content into a region of canvas and write the composite to output",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		region, align, valign, err := validateFitFlags()
		if err != nil {
			log.Fatalln(err)
		}

		canvas, err := loadCanvasSource(args[0])
		if err != nil {
			log.Fatalln(err)
		}
		content, err := loadImage(args[1])
		if err != nil {
			log.Fatalln(err)
		}

		opts := &compose.Options{
			Align:        align,
			VAlign:       valign,
			Padding:      fitPadding,
			AllowUpscale: fitAllowUpscale,
			KeepAlpha:    fitKeepAlpha,
		}
		if fitOverlay != "" {
			overlay, err := loadOverlaySource(fitOverlay)
			if err != nil {
				log.Fatalln(err)
			}
			opts.Overlay = &overlay
		}

		img, err := compose.FitImage(canvas, region, content, opts)
		if err != nil {
			log.Fatalln(err)
		}

		if err := imaging.WritePNG(args[2], img); err != nil {
			log.Fatalln(err)
		}
		log.Printf("[INFO] wrote %s", args[2])
	},
}

// validateFitFlags checks all fit flags and reports every problem at once.
func validateFitFlags() (compose.Region, compose.Align, compose.VAlign, error) {
	var errs *multierror.Error

	region, err := parseRegion(fitRegion)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	align, err := compose.ParseAlign(fitAlign)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	valign, err := compose.ParseVAlign(fitValign)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	if fitPadding < 0 {
		errs = multierror.Append(errs, fmt.Errorf("padding must not be negative: %d", fitPadding))
	}

	return region, align, valign, errs.ErrorOrNil()
}

// parseRegion parses "x1,y1,x2,y2" into a Region.
func parseRegion(s string) (compose.Region, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return compose.Region{}, fmt.Errorf("region must be x1,y1,x2,y2: %q", s)
	}
	coords := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return compose.Region{}, fmt.Errorf("region coordinate %q is not an integer", p)
		}
		coords[i] = n
	}
	return compose.Rect(coords[0], coords[1], coords[2], coords[3]), nil
}

// loadCanvasSource resolves a canvas argument, fetching URLs up front so the
// compositor only ever sees local paths or decoded images.
func loadCanvasSource(src string) (compose.Source, error) {
	if imaging.IsURL(src) {
		img, err := imaging.Fetch(src)
		if err != nil {
			return compose.Source{}, err
		}
		return compose.ImageSource(img), nil
	}
	return compose.PathSource(src), nil
}

// loadOverlaySource resolves an overlay argument. URLs are fetched up front
// (an unreachable URL is an error); local paths pass through so a missing
// file keeps its skip-with-warning behavior.
func loadOverlaySource(src string) (compose.Source, error) {
	if imaging.IsURL(src) {
		img, err := imaging.Fetch(src)
		if err != nil {
			return compose.Source{}, err
		}
		return compose.ImageSource(img), nil
	}
	return compose.PathSource(src), nil
}

// loadImage decodes an image from a local path or URL.
func loadImage(src string) (image.Image, error) {
	if imaging.IsURL(src) {
		return imaging.Fetch(src)
	}
	return imaging.Load(src)
}

func init() {
	rootCmd.AddCommand(fitCmd)
	fitCmd.Flags().StringVarP(&fitRegion, "region", "r", "", "Target region as x1,y1,x2,y2 (required)")
	fitCmd.Flags().StringVarP(&fitAlign, "align", "a", "center", "Horizontal alignment: left, center, right")
	fitCmd.Flags().StringVarP(&fitValign, "valign", "v", "middle", "Vertical alignment: top, middle, bottom")
	fitCmd.Flags().IntVarP(&fitPadding, "padding", "p", 0, "Uniform inset in pixels applied to all region sides")
	fitCmd.Flags().BoolVarP(&fitAllowUpscale, "allow-upscale", "u", false, "Permit scaling content beyond its native size")
	fitCmd.Flags().BoolVarP(&fitKeepAlpha, "keep-alpha", "k", true, "Use the content's alpha channel as the paste mask")
	fitCmd.Flags().StringVarP(&fitOverlay, "overlay", "o", "", "Overlay image pasted over the full canvas after the content")
	fitCmd.MarkFlagRequired("region")
}
