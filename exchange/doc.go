// Package exchange implements the structure data-exchange document: the
// plain-data form in which structures enter and leave this module.
//
//	{
//	  "cell":  [[ax,ay,az],[bx,by,bz],[cx,cy,cz]],   // default all zero
//	  "pbc":   [true, true, true],                   // default all true
//	  "kinds": ["Li0", "Cu0"],                       // optional declarations
//	  "sites": [
//	    {"symbol": "Li", "position": [0,0,0], "kind_name": "Li0",
//	     "charge": 1.0, "mass": 6.94, "magnetic_moment": 0, "weight": 1}
//	  ]
//	}
//
// ⚙️ Codecs:
//   - JSON (encoding/json, unknown keys rejected),
//   - YAML (gopkg.in/yaml.v3, unknown keys rejected),
//   - MessagePack (vmihailenco/msgpack/v5, keyed by the json tags).
//
// Document.Validate checks shapes and value ranges with
// go-playground/validator and reports the first violation as a schema
// error naming the offending field path, e.g. sites[2].position.
package exchange
