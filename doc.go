// Package dial builds the scene of a single-metric radial gauge.
//
// # Overview
//
// A dial maps one scalar onto a partial arc of a circular panel. The
// panel artwork is revealed through an annular sector that grows with the
// value, a thin pointer marks the arc tip, and a centered label shows the
// value as a percentage. Every change of value is animated.
//
// # Quick Start
//
//	res, err := dial.Transform(dial.ChartProps{
//	    Width:  400,
//	    Height: 400,
//	    FormData: map[string]any{
//	        "metrics":      []any{"count"},
//	        "primaryColor": "blue",
//	    },
//	    QueriesData: []dial.QueryResult{{Data: []dial.Row{{"count": 42}}}},
//	})
//	if err != nil {
//	    return err // *dial.ConfigError or *dial.DataShapeError
//	}
//	scene := res.Scene()
//
// # Architecture
//
// The package is pure: Transform resolves the configuration and extracts
// the value, SceneBuilder turns both into a Scene of plain values, and
// Scene.Frame re-derives the animated parts for one animation frame.
// Hosts provide the rest:
//   - anim: tween engine driving Scene.Frame
//   - canvas: rasterizer backed by gogpu/gg
//   - cmd/dial: command line and HTTP host
//
// # Coordinate System
//
// Canvas coordinates have the origin at the top-left with y pointing down.
// Polar angles (ToCartesian, CoordSys) are counter-clockwise from the
// positive x-axis; Sector angles are screen angles that turn clockwise.
package dial
