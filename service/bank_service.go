// file: service/bank_service.go

package service

import (
	"context"
	"encoding/json"
	"errors"
	"studio-api/logger"
	"studio-api/model"
	"studio-api/repository"
	"time"
)

var ErrBankCodeTaken = errors.New("a bank with this code already exists")

const (
	banksCacheKey = "banks:all"
	banksCacheTTL = 10 * time.Minute
)

type BankService struct {
	repo  repository.IBankRepository
	cache ICacheClient
}

// NewBankService builds the service. A nil cache disables caching.
func NewBankService(repo repository.IBankRepository, cache ICacheClient) *BankService {
	return &BankService{
		repo:  repo,
		cache: cache,
	}
}

// CreateBank saves the bank and invalidates the cached list.
func (s *BankService) CreateBank(ctx context.Context, req model.CreateBankRequest) (*model.Bank, error) {
	bank := &model.Bank{Name: req.Name, Code: req.Code}

	if err := s.repo.CreateBank(bank); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrBankCodeTaken
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, banksCacheKey).Err(); err != nil {
			logger.Log.WithError(err).Warn("Failed to invalidate banks cache")
		}
	}

	return bank, nil
}

// ListBanks returns all banks using a cache-aside strategy.
func (s *BankService) ListBanks(ctx context.Context) ([]*model.Bank, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, banksCacheKey).Result()
		if err == nil {
			var banks []*model.Bank
			if err := json.Unmarshal([]byte(cached), &banks); err == nil {
				return banks, nil
			}
		}
	}

	banks, err := s.repo.GetAllBanks()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(banks); err == nil {
			s.cache.Set(ctx, banksCacheKey, data, banksCacheTTL)
		}
	}

	return banks, nil
}
