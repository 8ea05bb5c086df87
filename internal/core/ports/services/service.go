package services

import "github.com/SscSPs/cbr_loader/internal/core/domain"

// ServiceContainer holds instances of all the application services.
// It is shared by the HTTP handlers, the scheduler and the one-shot command.
type ServiceContainer struct {
	CurrencyRate   CurrencyRateSvcFacade
	Bank           BankSvcFacade
	TaskLog        TaskLogReaderSvc
	CurrencyLoader LoaderSvc
	BankLoader     LoaderSvc
}

// Loader returns the loader responsible for taskType, or nil for an unknown type.
func (c *ServiceContainer) Loader(taskType domain.TaskType) LoaderSvc {
	switch taskType {
	case domain.TaskTypeCurrency:
		return c.CurrencyLoader
	case domain.TaskTypeBanks:
		return c.BankLoader
	default:
		return nil
	}
}
