package baseline

import (
	"context"
	"fmt"

	consul "github.com/hashicorp/consul/api"

	"github.com/qa-harness/reqres-contract-tests/framework/opt"
)

// ConsulStore keeps each shape as a JSON value in the Consul KV store.
type ConsulStore struct {
	consul  *consul.Client
	address string
}

func OpenConsulStore(address string) (*ConsulStore, error) {
	config := consul.DefaultConfig()
	config.Address = address
	client, err := consul.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("could not create Consul client: %w", err)
	}
	if _, err := client.Status().Leader(); err != nil {
		return nil, fmt.Errorf("could not connect to Consul at %s: %w", address, err)
	}
	return &ConsulStore{consul: client, address: address}, nil
}

func (c *ConsulStore) Get(ctx context.Context, key string) (opt.Maybe[Shape], error) {
	pair, _, err := c.consul.KV().Get(prefixedKey(key), (&consul.QueryOptions{}).WithContext(ctx))
	if err != nil || pair == nil {
		return opt.None[Shape](), err
	}
	return decodeShape(pair.Value)
}

func (c *ConsulStore) Put(ctx context.Context, key string, shape Shape) error {
	_, err := c.consul.KV().Put(
		&consul.KVPair{Key: prefixedKey(key), Value: []byte(encodeShape(shape))},
		(&consul.WriteOptions{}).WithContext(ctx),
	)
	return err
}

func (c *ConsulStore) Location() string { return "consul://" + c.address }

func (c *ConsulStore) Close() error { return nil }
