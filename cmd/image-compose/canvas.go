package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/ironsheep/image-compose-mcp/internal/imaging"
	"github.com/spf13/cobra"
)

var canvasColor string

var canvasCmd = &cobra.Command{
	Use:   "canvas [WxH] [output]",
	Short: "Create a blank solid-color canvas PNG at output",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		width, height, err := parseSize(args[0])
		if err != nil {
			log.Fatalln(err)
		}

		canvas, err := imaging.NewCanvas(width, height, canvasColor)
		if err != nil {
			log.Fatalln(err)
		}

		if err := imaging.WritePNG(args[1], canvas); err != nil {
			log.Fatalln(err)
		}
		log.Printf("[INFO] wrote %s", args[1])
	},
}

// parseSize parses "WxH" into width and height.
func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("size must be WxH: %q", s)
	}
	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("width %q is not an integer", parts[0])
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("height %q is not an integer", parts[1])
	}
	return width, height, nil
}

func init() {
	rootCmd.AddCommand(canvasCmd)
	canvasCmd.Flags().StringVarP(&canvasColor, "color", "c", "#FFFFFF", "Fill color as #RRGGBB")
}
