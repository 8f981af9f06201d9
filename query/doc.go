// Package query is the synchronous façade over the engines: it validates a
// request, computes the strategy towards its destination and loads its
// demand, returning both as one Result.
//
// Run serves a single request; RunBatch dispatches independent requests over
// a bounded worker pool. The network handle is passed explicitly to every
// call and is only read, so any number of queries may share it.
//
// Errors from the engines are returned unchanged (errors.Is keeps working
// against network, hyperpath and loading sentinels) and a failed query
// yields no partial Result.
package query
