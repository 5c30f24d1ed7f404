// Package valuation implements the assessment values experts express over
// domains, and the conversions between them.
//
// Numeric and Interval valuations live in quantitative domains. Single,
// TwoTuple and Hesitant valuations live in qualitative domains. Unified is
// the common representation every other valuation can be projected into: a
// vector of membership degrees over a BLTS domain, from which a
// representative label can be recovered through the Chi measure.
package valuation
