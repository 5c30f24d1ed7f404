// Package domain defines the domains assessments are expressed in.
//
// A Quantitative domain is a closed numeric interval. A Qualitative
// domain is an ordered set of fuzzy labels, with structural predicates
// that classify the label set: fuzzy partitions in the sense of Ruspini,
// Triangular-Odd-Ruspini domains (TOR) and basic linguistic term sets
// (BLTS). Several valuation transformations require BLTS domains.
package domain
