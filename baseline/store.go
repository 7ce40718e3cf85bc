package baseline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/qa-harness/reqres-contract-tests/framework/opt"
)

// KeyPrefix is prepended to every key in the shared stores (Redis, Consul, DynamoDB), so that
// the baseline can live alongside other data.
const KeyPrefix = "reqres-contract-tests/baseline"

// Store is where shapes are kept between runs. Keys are test IDs, such as "GET Users".
type Store interface {
	// Get returns the shape recorded for a key, or opt.None if there is none.
	Get(ctx context.Context, key string) (opt.Maybe[Shape], error)
	// Put records or replaces the shape for a key.
	Put(ctx context.Context, key string, shape Shape) error
	// Location describes where the data is, for log output.
	Location() string
	Close() error
}

// Open connects to a store described by a location string:
//
//	file:<path>          YAML file on disk; created on first write
//	redis://host:port    Redis hashes
//	consul://host:port   Consul KV entries
//	dynamodb:<table>     DynamoDB table with a string partition key "namespace" and sort key "key",
//	                     using the default AWS configuration from the environment
//
// For the network stores, Open verifies that the server is reachable.
func Open(ctx context.Context, location string) (Store, error) {
	scheme, target, err := parseLocation(location)
	if err != nil {
		return nil, err
	}
	switch scheme {
	case "file":
		return OpenFileStore(target)
	case "redis":
		return OpenRedisStore(ctx, target)
	case "consul":
		return OpenConsulStore(target)
	case "dynamodb":
		return OpenDynamoDBStore(ctx, target)
	}
	return nil, fmt.Errorf("unsupported baseline store %q", scheme)
}

func parseLocation(location string) (scheme, target string, err error) {
	scheme, rest, found := strings.Cut(location, ":")
	if !found || rest == "" {
		return "", "", fmt.Errorf("baseline location %q must be in the form <type>:<target>", location)
	}
	switch scheme {
	case "file", "dynamodb":
		return scheme, rest, nil
	case "redis", "consul":
		u, err := url.Parse(location)
		if err != nil {
			return "", "", fmt.Errorf("invalid baseline location %q: %w", location, err)
		}
		if u.Host == "" {
			return "", "", fmt.Errorf("baseline location %q has no host", location)
		}
		return scheme, u.Host, nil
	}
	return "", "", fmt.Errorf("unsupported baseline store %q; must be file, redis, consul, or dynamodb", scheme)
}

// Result is the outcome of Check.
type Result struct {
	// Recorded is true if there was no previous shape and the current one was stored.
	Recorded bool
	Previous Shape
	// Difference is empty if the current shape matched the previous one.
	Difference string
}

// Check compares a shape with the one previously stored under the same key. If there was none,
// it stores the current one.
func Check(ctx context.Context, store Store, key string, shape Shape) (Result, error) {
	previous, err := store.Get(ctx, key)
	if err != nil {
		return Result{}, fmt.Errorf("could not read baseline for %q from %s: %w", key, store.Location(), err)
	}
	if !previous.IsDefined() {
		if err := store.Put(ctx, key, shape); err != nil {
			return Result{}, fmt.Errorf("could not record baseline for %q in %s: %w", key, store.Location(), err)
		}
		return Result{Recorded: true}, nil
	}
	return Result{Previous: previous.Value(), Difference: previous.Value().Diff(shape)}, nil
}

func encodeShape(shape Shape) string {
	data, _ := json.Marshal(shape)
	return string(data)
}

func decodeShape(data []byte) (opt.Maybe[Shape], error) {
	var shape Shape
	if err := json.Unmarshal(data, &shape); err != nil {
		return opt.None[Shape](), fmt.Errorf("malformed baseline entry: %w", err)
	}
	return opt.Some(shape), nil
}

func prefixedKey(key string) string {
	return KeyPrefix + "/" + key
}
