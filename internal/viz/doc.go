// Package viz draws scenes for terminals and images.
//
//   - [Canvas]: braille pixel canvas with per-cell colors
//   - [Rasterize]: fills scene shapes onto any [Plotter], such as an [ImagePlotter]
//   - Theme selection with 5 built-in color schemes and the lipgloss styles
//     that follow the current theme
package viz
