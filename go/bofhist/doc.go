/*
Package bofhist counts visual word assignments per image.

Each input row holds a code such as "cluster_17" and the identity of the
image the row was extracted from. Adjacent rows with the same identity form
a run and every run gives one histogram:
	cfg := bofhist.Config{Pattern: "cluster_", Range: 100}
	records, err := bofhist.Histogram(ctx, rows, cfg)

Only adjacency matters: an image which appears in two separate runs
gives two records.
*/
package bofhist
