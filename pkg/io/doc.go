// Package io reads unsafe-code scan reports and writes the Json output
// format.
//
// # Input Format
//
// A scan report is a JSON object with the root package, the scanned
// packages and the dependency edges between them:
//
//	{
//	  "root": "app 0.1.0",
//	  "packages": [
//	    {
//	      "id": "app 0.1.0",
//	      "name": "app",
//	      "version": "0.1.0",
//	      "license": "MIT",
//	      "repository": "https://github.com/example/app",
//	      "forbids_unsafe": true,
//	      "used":   {"functions": {"safe": 3, "unsafe": 0}, "exprs": {"safe": 40, "unsafe": 0}},
//	      "unused": {},
//	      "test_used": {}
//	    }
//	  ],
//	  "dependencies": [
//	    {"from": "app 0.1.0", "to": "libc 0.2.150"},
//	    {"from": "app 0.1.0", "to": "proptest 1.4.0", "kind": "dev"}
//	  ]
//	}
//
// Each counter block has the keys functions, exprs, item_impls, item_traits
// and methods, each a {"safe", "unsafe"} pair. Missing keys count as zero.
//
// # Output Format
//
// [WriteJSON] emits the packages reachable from the root in breadth-first
// order together with their status and counts, plus the IDs of packages the
// scanner produced no metrics for.
package io
