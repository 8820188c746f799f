package main

import (
	"fmt"
	"os"

	"popchart/internal/features/barchart"
	"popchart/internal/population"
)

// go run etc/tools/test_chart.go
// renders both chart backends from the bundled dataset into etc/charts/
func main() {
	fmt.Println("Generating test charts...")

	table := population.FallbackTable()
	entries, err := table.TopN("2020", 10)
	if err != nil {
		fmt.Printf("Error selecting rows: %v\n", err)
		os.Exit(1)
	}

	spec, err := barchart.Build(barchart.Request{Entries: entries, Year: "2020", TopN: 10})
	if err != nil {
		fmt.Printf("Error building chart: %v\n", err)
		os.Exit(1)
	}

	pngPath := "etc/charts/" + barchart.Filename(10, "2020", "png")
	if err := barchart.RenderPNG(spec, pngPath); err != nil {
		fmt.Printf("Error generating PNG chart: %v\n", err)
		os.Exit(1)
	}

	svgPath := "etc/charts/" + barchart.Filename(10, "2020", "svg")
	if err := barchart.RenderSVG(spec, svgPath); err != nil {
		fmt.Printf("Error generating SVG chart: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Charts generated successfully: %s, %s\n", pngPath, svgPath)
	fmt.Println("Open the files to see the result!")
}
