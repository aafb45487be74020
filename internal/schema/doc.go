// Package schema loads register definition documents and validates their
// structure.
//
// # Document Overview
//
//	version: "1.0"                     # optional, ^1.0 accepted
//	namespaces:
//	  - namespace:
//	      name: dev
//	      registers:
//	        - register:
//	            name: CTRL
//	            type: u32              # u8 | u16 | u32 | u64
//	            system_name: ctrl_el1  # optional
//	            fields:
//	              - enable: 5          # single bit at offset 5
//	              - prescale: "8,4"    # offset 8, width 4
//	              - status:            # offset 0, width 4, enumerated
//	                  - "0,4": ~
//	                    IDLE: 0
//	                  - BUSY: 1
//	                    ERROR: 2
//	output: generated/dev.hpp
//
// # Field Ranges
//
// The three encodings are resolved once, during Decode, into a FieldRange:
//   - bare integer N: offset N, width 1
//   - "a,b": offset a, width b (one comma, whitespace around halves allowed)
//   - a sequence whose first element is a mapping keyed by "a,b"; the other
//     entries of that mapping and of the following mappings are the enum
//     NAME: value pairs, in declaration order
//
// Loading only checks that the input is well-formed YAML (ParseError).
// Decode reports every structural problem with a path to the offending node
// (SchemaError); malformed ranges additionally carry a RangeFormatError.
package schema
