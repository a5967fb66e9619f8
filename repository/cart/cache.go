package cartrepo

import (
	"context"
	"errors"

	"github.com/KasunInd27/CampQuest-sub000/model"
)

var ErrCacheMiss = errors.New("cache miss")

type Cache interface {
	Get(ctx context.Context, key string) (*model.Cart, error)
	Set(ctx context.Context, key string, cart *model.Cart) error
	Delete(ctx context.Context, key string) error
}

// NopCache is used when no Redis address is configured.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (*model.Cart, error) { return nil, ErrCacheMiss }
func (NopCache) Set(context.Context, string, *model.Cart) error   { return nil }
func (NopCache) Delete(context.Context, string) error             { return nil }
