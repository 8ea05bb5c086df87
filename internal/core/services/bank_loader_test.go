package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/cbr_loader/internal/apperrors"
	"github.com/SscSPs/cbr_loader/internal/core/domain"
	"github.com/SscSPs/cbr_loader/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testBanksBaseURL = "https://cbr.test/BIKNew/"
	todayArchiveURL  = "https://cbr.test/BIKNew/20241202ED01OSBR.zip"
	yesterdayURL     = "https://cbr.test/BIKNew/20241201ED01OSBR.zip"
)

type BankLoaderTestSuite struct {
	suite.Suite
	fetcher *MockFeedFetcher
	store   *memoryBankStore
	logs    *recordingTaskLogRepo
	now     time.Time
	loader  *services.BankLoader
	archive []byte
}

func (suite *BankLoaderTestSuite) SetupTest() {
	suite.fetcher = new(MockFeedFetcher)
	suite.store = newMemoryBankStore()
	suite.logs = &recordingTaskLogRepo{}
	suite.now = time.Date(2024, 12, 2, 9, 0, 0, 0, time.UTC)
	suite.loader = services.NewBankLoader(suite.fetcher, testBanksBaseURL, suite.store, suite.logs,
		services.WithClock(fixedClock(suite.now)))
	suite.archive = bankArchive(suite.T(), "20241201_ED807_full.xml", encode1251(suite.T(), bankDirectoryXML))
}

func notFound(url string) error {
	return fmt.Errorf("%w: %w: GET %s returned 404 Not Found", apperrors.ErrTransport, apperrors.ErrFeedNotFound, url)
}

func (suite *BankLoaderTestSuite) requireSingleRun() domain.TaskLog {
	suite.Require().Len(suite.logs.begun, 1)
	suite.Require().Len(suite.logs.completed, 1)
	log := suite.logs.completed[0]
	suite.Equal(domain.TaskTypeBanks, log.TaskType)
	suite.Require().NotNil(log.FinishedAt)
	suite.False(log.FinishedAt.Before(log.StartedAt))
	return log
}

func (suite *BankLoaderTestSuite) TestRun_TodaysArchive() {
	suite.fetcher.On("Fetch", mock.Anything, todayArchiveURL).Return(suite.archive, nil).Once()

	ok := suite.loader.Run(context.Background())

	suite.True(ok)
	log := suite.requireSingleRun()
	suite.True(log.Success)
	suite.Equal(2, log.ItemsProcessed)
	suite.Equal("Successfully loaded 2 bank records", log.Details)

	suite.Require().Len(suite.store.rows, 2)
	sber := suite.store.rows["044525225"]
	suite.Equal("ПАО Сбербанк", sber.NameP)
	suite.Equal("30101810400000000225", sber.KSNP)
	suite.Equal("20241201_ED807_full.xml", sber.CBRFFile)
	suite.Equal(suite.now, sber.ImportDate)
	suite.Equal(domain.SourceEncodingWindows1251, sber.Payload.SourceEncoding)
	suite.fetcher.AssertNumberOfCalls(suite.T(), "Fetch", 1)
}

func (suite *BankLoaderTestSuite) TestRun_FallsBackToYesterdayOnce() {
	suite.fetcher.On("Fetch", mock.Anything, todayArchiveURL).Return(nil, notFound(todayArchiveURL)).Once()
	suite.fetcher.On("Fetch", mock.Anything, yesterdayURL).Return(suite.archive, nil).Once()

	ok := suite.loader.Run(context.Background())

	suite.True(ok)
	suite.True(suite.requireSingleRun().Success)
	suite.Len(suite.store.rows, 2)
	suite.fetcher.AssertNumberOfCalls(suite.T(), "Fetch", 2)
	suite.fetcher.AssertExpectations(suite.T())
}

func (suite *BankLoaderTestSuite) TestRun_YesterdayMissingToo() {
	suite.fetcher.On("Fetch", mock.Anything, todayArchiveURL).Return(nil, notFound(todayArchiveURL)).Once()
	suite.fetcher.On("Fetch", mock.Anything, yesterdayURL).Return(nil, notFound(yesterdayURL)).Once()

	ok := suite.loader.Run(context.Background())

	suite.False(ok)
	log := suite.requireSingleRun()
	suite.Contains(log.Details, "Error loading banks data: ")
	suite.Contains(log.Details, yesterdayURL)
	suite.fetcher.AssertNumberOfCalls(suite.T(), "Fetch", 2)
	suite.Zero(suite.store.upserts)
}

func (suite *BankLoaderTestSuite) TestRun_ServerErrorIsNotRetried() {
	serverErr := fmt.Errorf("%w: GET %s returned 500 Internal Server Error", apperrors.ErrTransport, todayArchiveURL)
	suite.fetcher.On("Fetch", mock.Anything, todayArchiveURL).Return(nil, serverErr).Once()

	ok := suite.loader.Run(context.Background())

	suite.False(ok)
	suite.Equal("Error loading banks data: "+serverErr.Error(), suite.requireSingleRun().Details)
	suite.fetcher.AssertNumberOfCalls(suite.T(), "Fetch", 1)
}

func (suite *BankLoaderTestSuite) TestRun_BrokenArchives() {
	tests := []struct {
		name    string
		archive []byte
	}{
		{name: "not a zip", archive: []byte("<html>maintenance</html>")},
		{name: "no xml member", archive: bankArchive(suite.T(), "readme.txt", []byte("empty"))},
		{name: "undefined byte", archive: bankArchive(suite.T(), "d.xml", append(encode1251(suite.T(), "<ED807>"), 0x98))},
		{name: "two document elements", archive: bankArchive(suite.T(), "d.xml", encode1251(suite.T(), bankDirectoryXML+bankDirectoryXML))},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.fetcher.On("Fetch", mock.Anything, todayArchiveURL).Return(tt.archive, nil).Once()

			suite.False(suite.loader.Run(context.Background()))
			log := suite.requireSingleRun()
			suite.Contains(log.Details, "Error loading banks data: ")
			suite.Zero(suite.store.upserts)
		})
	}
}

func (suite *BankLoaderTestSuite) TestRun_IsIdempotent() {
	suite.fetcher.On("Fetch", mock.Anything, todayArchiveURL).Return(suite.archive, nil).Twice()

	suite.True(suite.loader.Run(context.Background()))
	suite.True(suite.loader.Run(context.Background()))

	suite.Len(suite.store.rows, 2)
	suite.Equal(4, suite.store.upserts)
}

func TestBankLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(BankLoaderTestSuite))
}
