// Package encoding provides the JSON interchange format for Strata IR
// operations.
//
//	Format structure (version 1):
//	  {
//	    "version": 1,
//	    "values":  [ {"id": "v0", "type": {...}}, ... ],   // free values
//	    "op":      { "name": ..., "operands": [ids],
//	                 "results": [{"id", "type"}],
//	                 "attrs":   [{"name", "kind", ...}],
//	                 "region":  { "args": [...], "ops": [...] } }
//	  }
//
// Attribute dictionaries round-trip verbatim, in insertion order. In
// particular the reserved operand_segment_sizes attribute of
// structured operations is carried through unchanged as an integer
// sequence; an operation that carries it malformed, or inconsistent
// with its operand count, is rejected at decode time as a structural
// error.
package encoding
