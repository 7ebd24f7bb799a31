// Package mem provides heap allocation utilities.
//
// # Aligned Allocation
//
// AllocAligned returns cache-line aligned byte slices. It serves as the
// fallback table backing when an anonymous mapping cannot be created, so
// the cluster-per-cache-line layout holds on either allocation path.
package mem
