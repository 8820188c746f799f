package barchart

import (
	"image/color"
	"math"
)

// Anchor colors of the viridis colormap, dark purple through yellow.
var viridisAnchors = []color.RGBA{
	{R: 68, G: 1, B: 84, A: 255},
	{R: 59, G: 82, B: 139, A: 255},
	{R: 33, G: 145, B: 140, A: 255},
	{R: 94, G: 201, B: 98, A: 255},
	{R: 253, G: 231, B: 37, A: 255},
}

// barColor picks the color for bar i of n by sweeping the palette.
func barColor(i, n int) color.RGBA {
	if n <= 1 {
		return viridisAnchors[0]
	}
	return viridisAt(float64(i) / float64(n-1))
}

func viridisAt(t float64) color.RGBA {
	if t <= 0 {
		return viridisAnchors[0]
	}
	if t >= 1 {
		return viridisAnchors[len(viridisAnchors)-1]
	}
	scaled := t * float64(len(viridisAnchors)-1)
	idx := int(scaled)
	frac := scaled - float64(idx)
	a := viridisAnchors[idx]
	b := viridisAnchors[idx+1]
	return color.RGBA{
		R: lerpByte(a.R, b.R, frac),
		G: lerpByte(a.G, b.G, frac),
		B: lerpByte(a.B, b.B, frac),
		A: 255,
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
