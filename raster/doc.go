// Package raster is a small software rasterizer for cube3d frames.
//
// Canvas implements cube3d.Sink on top of a minimal pixel Target: it turns
// segments into Bresenham lines and markers into filled squares, clipping
// everything to the target. Targets exist for RGB565 framebuffers and for any
// tinygo.org/x/drivers Displayer, so the same frame can go to a host
// framebuffer or a small SPI panel.
package raster
