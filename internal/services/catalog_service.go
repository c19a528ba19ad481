package services

import (
	"database/sql"
	"strings"

	"bubblycrochet/internal/domain"
	"bubblycrochet/internal/repos"

	"github.com/google/uuid"
)

type CatalogService struct {
	Products *repos.ProductRepo
}

func NewCatalogService(products *repos.ProductRepo) *CatalogService {
	return &CatalogService{Products: products}
}

func (s *CatalogService) List(search, category string) ([]domain.Product, error) {
	out, err := s.Products.List(strings.ToLower(strings.TrimSpace(search)), category)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].DecodeImages()
	}
	return out, nil
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	p, err := s.Products.Get(id)
	if err == sql.ErrNoRows {
		return domain.Product{}, ErrNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}
	p.DecodeImages()
	return p, nil
}

func (s *CatalogService) Create(p domain.Product) (domain.Product, error) {
	p.ID = uuid.NewString()
	p.EncodeImages()
	if err := s.Products.Create(&p); err != nil {
		return domain.Product{}, err
	}
	return s.Get(p.ID)
}

func (s *CatalogService) Update(p domain.Product) (domain.Product, error) {
	p.EncodeImages()
	ok, err := s.Products.Update(&p)
	if err != nil {
		return domain.Product{}, err
	}
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return s.Get(p.ID)
}

func (s *CatalogService) Delete(id string) error {
	ok, err := s.Products.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
