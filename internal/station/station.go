package station

import (
	"github.com/sevici/backend-go/internal/cache"
	"github.com/sevici/backend-go/internal/models"
	"github.com/sevici/backend-go/pkg/http/client"
)

// Source defines the interface for loading the current station snapshot
type Source interface {
	models.StationSource
}

type SourceFactory interface {
	NewSource(httpClient client.Interface, opts JCDecauxOptions, store cache.SnapshotStore) (*JCDecauxSource, error)
}

type DefaultSourceFactory struct{}

func (f *DefaultSourceFactory) NewSource(httpClient client.Interface, opts JCDecauxOptions, store cache.SnapshotStore) (*JCDecauxSource, error) {
	return NewJCDecauxSource(httpClient, opts, store)
}
