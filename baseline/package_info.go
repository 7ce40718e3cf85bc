// Package baseline records the shape of API responses so that later runs can check that the
// API still answers in the same way. A shape is the status code plus the set of JSON property
// paths of the body; values are ignored, since the public API returns generated IDs and
// timestamps.
//
// Shapes are kept in a Store, which can be a local YAML file, Redis, Consul, or DynamoDB. See
// Open for the location syntax.
package baseline
