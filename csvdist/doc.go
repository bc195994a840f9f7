// Package csvdist loads tabular distance data into the numeric grid expected
// by distmat.New.
//
// Expected shape (the "cities" layout): a header row of node labels and a
// leading label column, both dropped; every remaining cell is a distance.
// Cells that are empty, "-" or otherwise non-numeric become math.Inf(1)
// ("no direct edge"), and the diagonal is forced to +Inf regardless of its
// cell content — a node has no edge to itself.
//
// csvdist performs no semantic validation beyond shape: squareness,
// negativity and NaN checks belong to distmat.New, which consumes the
// returned grid.
package csvdist
