// Package param provides the query-pair primitives shared by every option
// family: the Pair type, the comma-join list-merge, and the query-string
// encoder.
//
// All functions are pure and total. Merge and encode never fail: a pair with
// an empty value is still a pair, and it still renders as "key=".
//
// Produced grammar:
//
//	key1=val1&key2=val2&...
//
// Keys and values are escaped with standard query escaping. Multi-valued
// parameters are comma-joined inside a single value by MergeByKey; repeated
// keys are nevertheless representable (Encode renders each pair
// independently), for families whose contract calls for repetition.
package param
