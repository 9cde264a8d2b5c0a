package qdrantdb

import (
	"github.com/qdrant/go-client/qdrant"
)

type ProfileClient struct {
	Client     *qdrant.Client
	collection string
	dimension  uint64
}

func NewClient(host string, port int, collection string, dimension int) (*ProfileClient, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port, // gRPC port
	})
	if err != nil {
		return nil, err
	}
	return &ProfileClient{
		Client:     client,
		collection: collection,
		dimension:  uint64(dimension),
	}, nil
}
