package cart

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/KasunInd27/CampQuest-sub000/model"
	cartrepo "github.com/KasunInd27/CampQuest-sub000/repository/cart"
	"github.com/KasunInd27/CampQuest-sub000/service/pricing"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidQuantity = errors.New("quantity must be >= 1")
	ErrInvalidDays     = errors.New("rental days must be >= 1")
	ErrLineNotFound    = cartrepo.ErrLineNotFound
)

// Catalog is the read-only product lookup the aggregator prices from.
type Catalog interface {
	RentalSnapshot(ctx context.Context, id int64) (*model.RentalProduct, error)
	SaleSnapshot(ctx context.Context, id int64) (*model.SaleProduct, error)
}

// LineView is a cart line plus its computed charge.
type LineView struct {
	model.CartLine
	Subtotal float64 `json:"subtotal"`
}

// View is the authoritative post-mutation cart state returned to the
// client after every operation; the client renders it instead of
// re-fetching.
type View struct {
	Key      string     `json:"key"`
	Lines    []LineView `json:"lines"`
	Subtotal float64    `json:"subtotal"`
}

type Service interface {
	Get(ctx context.Context, key string) (*View, error)
	AddLine(ctx context.Context, key string, productID int64, lineType model.LineType, qty int64, rentalDays int) (*View, error)
	UpdateQuantity(ctx context.Context, key string, productID int64, lineType model.LineType, qty int64) (*View, error)
	UpdateRentalDays(ctx context.Context, key string, productID int64, days int) (*View, error)
	RemoveLine(ctx context.Context, key string, productID int64, lineType model.LineType) (*View, error)

	// Snapshot returns the raw cart for checkout; Clear empties it once
	// the order is durably created.
	Snapshot(ctx context.Context, key string) (*model.Cart, error)
	Clear(ctx context.Context, key string) error
}

type service struct {
	r       cartrepo.Repo
	cache   cartrepo.Cache
	catalog Catalog
	sfg     singleflight.Group
}

func New(r cartrepo.Repo, cache cartrepo.Cache, catalog Catalog) Service {
	return &service{r: r, cache: cache, catalog: catalog}
}

func (s *service) Get(ctx context.Context, key string) (*View, error) {
	cart, err := s.cachedCart(ctx, key)
	if err != nil {
		return nil, err
	}
	return buildView(cart), nil
}

// cachedCart reads through the cache; singleflight collapses
// concurrent misses for the same key into one repo query.
func (s *service) cachedCart(ctx context.Context, key string) (*model.Cart, error) {
	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		cart, err := s.cache.Get(ctx, key)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, cartrepo.ErrCacheMiss) {
			slog.Warn("cart cache get", "err", err)
		}

		cart, err = s.r.Get(ctx, key)
		if err != nil {
			return nil, err
		}

		go func() {
			setCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := s.cache.Set(setCtx, key, cart); err != nil {
				slog.Warn("cart cache set", "err", err)
			}
		}()
		return cart, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Cart), nil
}

func (s *service) AddLine(ctx context.Context, key string, productID int64, lineType model.LineType, qty int64, rentalDays int) (*View, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	// Price and name come from the catalog snapshot, never the client.
	line := model.CartLine{ProductID: productID, LineType: lineType, Quantity: qty}
	switch lineType {
	case model.LineRental:
		if rentalDays < 1 {
			return nil, ErrInvalidDays
		}
		p, err := s.catalog.RentalSnapshot(ctx, productID)
		if err != nil {
			return nil, ErrProductNotFound
		}
		days := rentalDays
		line.Name = p.Name
		line.UnitPrice = p.DailyRate
		line.WeeklyRate = p.WeeklyRate
		line.RentalDays = &days
	default:
		p, err := s.catalog.SaleSnapshot(ctx, productID)
		if err != nil {
			return nil, ErrProductNotFound
		}
		line.Name = p.Name
		line.UnitPrice = p.Price
	}

	if err := s.r.UpsertLine(ctx, key, line); err != nil {
		return nil, err
	}
	return s.afterMutation(ctx, key)
}

func (s *service) UpdateQuantity(ctx context.Context, key string, productID int64, lineType model.LineType, qty int64) (*View, error) {
	if err := s.r.UpdateQuantity(ctx, key, productID, lineType, qty); err != nil {
		return nil, err
	}
	return s.afterMutation(ctx, key)
}

func (s *service) UpdateRentalDays(ctx context.Context, key string, productID int64, days int) (*View, error) {
	if days < 1 {
		return nil, ErrInvalidDays
	}
	if err := s.r.UpdateRentalDays(ctx, key, productID, days); err != nil {
		return nil, err
	}
	return s.afterMutation(ctx, key)
}

func (s *service) RemoveLine(ctx context.Context, key string, productID int64, lineType model.LineType) (*View, error) {
	if err := s.r.RemoveLine(ctx, key, productID, lineType); err != nil {
		return nil, err
	}
	return s.afterMutation(ctx, key)
}

func (s *service) Snapshot(ctx context.Context, key string) (*model.Cart, error) {
	return s.r.Get(ctx, key)
}

func (s *service) Clear(ctx context.Context, key string) error {
	if err := s.r.Clear(ctx, key); err != nil {
		return err
	}
	s.invalidate(key)
	return nil
}

func (s *service) afterMutation(ctx context.Context, key string) (*View, error) {
	s.invalidate(key)
	cart, err := s.r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return buildView(cart), nil
}

func (s *service) invalidate(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, key); err != nil {
		slog.Warn("cart cache invalidate", "err", err)
	}
}

func buildView(cart *model.Cart) *View {
	v := &View{Key: cart.Key}
	for _, l := range cart.Lines {
		lv := LineView{CartLine: l}
		if l.LineType == model.LineRental && l.RentalDays != nil {
			amount, err := pricing.PriceRentalLine(l.UnitPrice, l.WeeklyRate, *l.RentalDays, int(l.Quantity))
			if err != nil {
				slog.Warn("unpriceable rental line in cart",
					"cart_key", cart.Key, "product_id", l.ProductID, "err", err)
			} else {
				lv.Subtotal = amount
			}
		} else {
			lv.Subtotal = l.UnitPrice * float64(l.Quantity)
		}
		v.Subtotal += lv.Subtotal
		v.Lines = append(v.Lines, lv)
	}
	return v
}
