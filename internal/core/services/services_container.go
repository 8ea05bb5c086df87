package services

import (
	portsrepo "github.com/SscSPs/cbr_loader/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cbr_loader/internal/core/ports/services"
	"github.com/SscSPs/cbr_loader/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	fetcher portssvc.FeedFetcher,
	opts ...LoaderOption,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		CurrencyRate:   NewCurrencyRateService(repos.CurrencyRateRepo),
		Bank:           NewBankService(repos.BankRepo),
		TaskLog:        NewTaskLogService(repos.TaskLogRepo),
		CurrencyLoader: NewCurrencyRateLoader(fetcher, cfg.CurrencyURL, repos.CurrencyRateRepo, repos.TaskLogRepo, opts...),
		BankLoader:     NewBankLoader(fetcher, cfg.BanksBaseURL, repos.BankRepo, repos.TaskLogRepo, opts...),
	}
}
