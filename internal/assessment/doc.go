// Package assessment turns a set of answers into per-section scores and a
// result category.
//
// Scoring is driven entirely by Rules: each section carries its own points
// table, so sections scored in opposite directions coexist in one variant.
// Classification checks the high-risk conditions first (any one suffices)
// and only then the strategic conditions (all must hold); everything else
// falls in the preparation band.
package assessment
