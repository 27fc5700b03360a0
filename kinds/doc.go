// Package kinds resolves the sites of a structure into kinds: groups of
// sites that are physically indistinguishable within per-property
// tolerances.
//
// 🚀 How are kinds resolved?
//
//  1. Every clusterable property (charge, mass, magnetization, weight) that
//     is not excluded is clustered on its own by package cluster, with the
//     threshold taken from the Thresholds configuration object.
//  2. The per-property labels are stacked with the chemical symbol into one
//     row per site. Sites with identical rows form one joint kind.
//  3. Each joint kind is named symbol+ordinal, the ordinal counting kinds of
//     the same element in order of first appearance: Li0, Cu0, Li1.
//  4. Caller-supplied tags are checked against the exact (threshold 0)
//     partition; disagreement is reported, never corrected.
//
// ✨ Key features:
//   - explicit, enumerated thresholds (DefaultThresholds: charge 0.1,
//     mass 1e-4, magnetization 1e-2, weight 0)
//   - two partition strategies with identical results: Keyed (O(N·P),
//     default) and Pairwise (O(N²·P) row subtraction)
//   - full per-property breakdown in the Assignment, so a caller can audit
//     why two sites were or were not merged
//
// ⚙️ Usage:
//
//	a, err := kinds.Resolve(kinds.Sites(sites),
//	  kinds.WithThreshold(site.Charge, 0.05),
//	  kinds.WithExclude(site.Weight),
//	)
//	fmt.Println(a.Kinds) // [Li0 Li0 Cu0]
//
// Resolve is a pure function over its input; it is safe to call
// concurrently on shared immutable sources.
package kinds
