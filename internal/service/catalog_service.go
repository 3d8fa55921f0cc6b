package service

import (
	"context"
	"fmt"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/platform/logger"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/repository"
)

type CatalogService interface {
	Categories(ctx context.Context) ([]entity.Category, error)
	// ProductsByCategory only returns available products; sold items are
	// implicitly hidden.
	ProductsByCategory(ctx context.Context, category string) ([]entity.Product, error)
	CreateProduct(ctx context.Context, product *entity.Product) (*repository.InsertResult, error)
	Products(ctx context.Context) ([]entity.Product, error)
	Product(ctx context.Context, id string) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) (*repository.DeleteResult, error)
	SellerProducts(ctx context.Context, sellerEmail string) ([]entity.Product, error)
	AdvertiseProduct(ctx context.Context, id string) (*repository.UpdateResult, error)
	AdvertisedProducts(ctx context.Context) ([]entity.Product, error)
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	log          logger.Logger
}

func NewCatalogService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, log logger.Logger) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		log:          log,
	}
}

func (s *catalogService) Categories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *catalogService) ProductsByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	return s.productRepo.ListAvailableByCategory(ctx, category)
}

func (s *catalogService) CreateProduct(ctx context.Context, product *entity.Product) (*repository.InsertResult, error) {
	if product.Status == "" {
		product.Status = entity.ProductStatusAvailable
	}
	s.log.Infof("Creating product %q in category %s for seller %s", product.Name, product.Category, product.SellerEmail)
	res, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return res, nil
}

func (s *catalogService) Products(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *catalogService) Product(ctx context.Context, id string) (*entity.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) (*repository.DeleteResult, error) {
	s.log.Infof("Deleting product %s", id)
	res, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}
	return res, nil
}

func (s *catalogService) SellerProducts(ctx context.Context, sellerEmail string) ([]entity.Product, error) {
	return s.productRepo.ListBySeller(ctx, sellerEmail)
}

func (s *catalogService) AdvertiseProduct(ctx context.Context, id string) (*repository.UpdateResult, error) {
	s.log.Infof("Advertising product %s", id)
	res, err := s.productRepo.SetAdvertising(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to advertise product: %w", err)
	}
	return res, nil
}

func (s *catalogService) AdvertisedProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.ListAdvertising(ctx)
}
