// Package netfile reads and writes network descriptions (plus optional
// demand) in JSON, YAML, TOML and CSV.
//
// The structured formats share one document shape:
//
//	{
//	  "nodes":  [{"id": "home", "role": "origin"}, {"id": "work", "role": "destination"}],
//	  "links":  [
//	    {"id": "red", "from": "home", "to": "work", "kind": "line", "cost": 3, "frequency": 0.5},
//	    {"from": "home", "to": "work", "kind": "walk", "cost": 12},
//	    {"id": "bus", "from": "home", "to": "work", "kind": "bounded", "min": 4, "max": 9}
//	  ],
//	  "demand": {"home": 100}
//	}
//
// Kind "bounded" describes a line by its minimum and maximum travel time
// (see network.Bounded). Nodes referenced only by links are created as
// transfer nodes.
//
// CSV files hold one link per row with the header
// id,from,to,kind,cost,frequency and carry no demand.
package netfile
