// Package report turns a finished run into something a person can look at.
//
// [NewPayload] assembles the renderer-neutral [Payload]: three bar series,
// the two acceptance bounds, axis labels and legend. Renderers consume only
// the payload:
//
//   - [Payload.WriteJSON]: machine-readable payload for external plotting
//   - [SVG]: standalone bar chart
//   - [Chart]: terminal histogram via asciigraph
//
// Colours and layout belong to the renderers and carry no meaning of their own.
package report
