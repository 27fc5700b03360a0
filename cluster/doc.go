// Package cluster groups the values of one numeric property into
// equivalence classes under a tolerance threshold.
//
// 🚀 What does it compute?
//
//	Given values v[0..n-1] and a threshold t:
//	  • t == 0: exact match: equal values share a cluster, distinct values
//	    never do. Representative values are the inputs unchanged.
//	  • t  > 0: bucket[i] = floor((v[i] - min(v)) / t); sites sharing a
//	    bucket share a cluster, represented by the minimum of its members.
//
//	Labels are renumbered densely 0..K-1 in order of first appearance, so
//	the same input order always yields the same labels.
//
// ⚙️ Usage:
//
//	res, err := cluster.Cluster([]float64{1.0, 1.05, 0.0}, 0.1)
//	// res.Labels = [0 0 1], res.Values = [1.0 1.0 0.0], res.Count = 2
//
// Performance:
//
//   - Time:   O(n)
//   - Memory: O(n)
package cluster
