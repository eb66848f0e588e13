package service

import (
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/validator"

	"github.com/google/uuid"
)

type QuoteService interface {
	GetAllQuotes() ([]model.Quote, error)
	GetQuote(id uuid.UUID) (*model.Quote, error)
	GetRandomQuote() (*model.Quote, error)
	CreateQuote(quote *model.Quote) error
	UpdateQuote(id uuid.UUID, patch *model.QuotePatch) (*model.Quote, error)
	DeleteQuote(id uuid.UUID) (*model.Quote, error)
}

type quoteService struct {
	quoteRepo repository.QuoteRepository
}

func NewQuoteService(repo repository.QuoteRepository) QuoteService {
	return &quoteService{quoteRepo: repo}
}

func (s *quoteService) GetAllQuotes() ([]model.Quote, error) {
	return s.quoteRepo.FindAll()
}

func (s *quoteService) GetQuote(id uuid.UUID) (*model.Quote, error) {
	quote, err := s.quoteRepo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return quote, nil
}

func (s *quoteService) GetRandomQuote() (*model.Quote, error) {
	quote, err := s.quoteRepo.FindRandom()
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return quote, nil
}

func (s *quoteService) CreateQuote(quote *model.Quote) error {
	if quote.Author == "" {
		quote.Author = "Unknown"
	}
	if quote.Type == "" {
		quote.Type = "motivational"
	}
	if errs := validator.ValidateStruct(quote); len(errs) > 0 {
		return validationError(errs)
	}
	return s.quoteRepo.Create(quote)
}

func (s *quoteService) UpdateQuote(id uuid.UUID, patch *model.QuotePatch) (*model.Quote, error) {
	quote, err := s.quoteRepo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	patch.Apply(quote)
	if err := s.quoteRepo.Save(quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *quoteService) DeleteQuote(id uuid.UUID) (*model.Quote, error) {
	quote, err := s.quoteRepo.FindByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	if err := s.quoteRepo.Delete(id); err != nil {
		return nil, err
	}
	return quote, nil
}
