// Package canvas rasterizes dial scenes with gogpu/gg.
//
// The dial package describes a gauge as a scene of plain values. canvas
// turns such a scene into pixels: arcs and the pointer are filled through
// their clip outlines with the panel image as the paint source, the
// inner circle gets a radial glow in the primary color, and the label is
// set in Go Bold unless another font is supplied.
//
//	r := &canvas.Renderer{Assets: canvas.DirLoader{Dir: "assets"}}
//	img, err := r.Render(scene)
//
// Panel artwork is resolved through an AssetLoader. DirLoader reads files
// named by dial.PrimaryColor.Asset, SyntheticLoader draws a stand-in
// panel for each built-in color, and CachedLoader memoizes either.
package canvas
