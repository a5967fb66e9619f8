package catalogsvc

import (
	"context"
	"errors"

	"github.com/KasunInd27/CampQuest-sub000/model"
	productrepo "github.com/KasunInd27/CampQuest-sub000/repository/product"
)

var ErrNotFound = productrepo.ErrNotFound

type Repo interface {
	Create(ctx context.Context, p *model.Product) (int64, error)
	List(ctx context.Context) ([]model.Product, error)
	Detail(ctx context.Context, id int64) (*model.Product, error)
	RentalSnapshot(ctx context.Context, id int64) (*model.RentalProduct, error)
	SaleSnapshot(ctx context.Context, id int64) (*model.SaleProduct, error)
	PackageSnapshot(ctx context.Context, id int64) (*model.PackageProduct, error)
	AddRentalStock(ctx context.Context, id int64, n int64) error
}

type Service interface {
	Create(ctx context.Context, p *model.Product) (int64, error)
	List(ctx context.Context) ([]model.Product, error)
	Detail(ctx context.Context, id int64) (*model.Product, error)
	RentalSnapshot(ctx context.Context, id int64) (*model.RentalProduct, error)
	SaleSnapshot(ctx context.Context, id int64) (*model.SaleProduct, error)
	PackageSnapshot(ctx context.Context, id int64) (*model.PackageProduct, error)
	AddRentalStock(ctx context.Context, id int64, n int64) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, p *model.Product) (int64, error) {
	if p.Name == "" || p.Category == "" {
		return 0, errors.New("invalid payload")
	}
	switch p.Kind {
	case model.ProductRental:
		if p.DailyRate <= 0 || p.TotalQuantity < 0 {
			return 0, errors.New("invalid rental product")
		}
	case model.ProductSale, model.ProductPackage:
		if p.Price <= 0 {
			return 0, errors.New("invalid price")
		}
	default:
		return 0, errors.New("unknown product kind")
	}
	return s.r.Create(ctx, p)
}

func (s *service) List(ctx context.Context) ([]model.Product, error) { return s.r.List(ctx) }

func (s *service) Detail(ctx context.Context, id int64) (*model.Product, error) {
	return s.r.Detail(ctx, id)
}

func (s *service) RentalSnapshot(ctx context.Context, id int64) (*model.RentalProduct, error) {
	return s.r.RentalSnapshot(ctx, id)
}

func (s *service) SaleSnapshot(ctx context.Context, id int64) (*model.SaleProduct, error) {
	return s.r.SaleSnapshot(ctx, id)
}

func (s *service) PackageSnapshot(ctx context.Context, id int64) (*model.PackageProduct, error) {
	return s.r.PackageSnapshot(ctx, id)
}

func (s *service) AddRentalStock(ctx context.Context, id int64, n int64) error {
	return s.r.AddRentalStock(ctx, id, n)
}
