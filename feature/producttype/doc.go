// Package producttype derives product types from collection membership.
//
// The mapping is a YAML document listing collection handles in priority order:
//
//	types:
//	  - code: led-strips
//	    name: LED Strip Lighting
//	  - code: downlights
//
// A product belonging to several mapped collections takes the type of the first entry.
package producttype
