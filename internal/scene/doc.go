// Package scene turns a garden snapshot into an ordered list of flat shapes
// in canvas pixels. Frontends only draw what Build returns, so the terminal,
// the window, SVG and GIF output all show the same picture.
//
// Build is a pure function of its input and keeps no state between frames.
package scene
