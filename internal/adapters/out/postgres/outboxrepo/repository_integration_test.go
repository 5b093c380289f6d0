package outboxrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/outboxrepo"
	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var now = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *outboxrepo.GormOutboxRepository
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Run(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.repository = outboxrepo.NewGormOutboxRepository(db)
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OutboxRepositoryIntegrationTestSuite) add(orderID int64, at time.Time) *notification.OutboxEntry {
	e, err := notification.NewOutboxEntry(
		kernel.ID(orderID), notification.KindOrderUpdate, "ada@example.com",
		notification.Data{"order_number": orderID, "status_name": "Completed"},
		errors.New("smtp: connection refused"), at,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), e))
	return e
}

const lease = 5 * time.Minute

func (suite *OutboxRepositoryIntegrationTestSuite) TestClaimPending_OldestFirstWithPayload() {
	ctx := context.Background()
	second := suite.add(2, now.Add(time.Minute))
	first := suite.add(1, now)

	limited, err := suite.repository.ClaimPending(ctx, 1, now, lease)
	suite.Require().NoError(err)
	suite.Require().Len(limited, 1)
	suite.True(first.ID().IsEqual(limited[0].ID()))

	entry := limited[0]
	suite.Equal(notification.KindOrderUpdate, entry.Kind())
	suite.Equal(1, entry.Attempts())
	suite.Equal("smtp: connection refused", entry.LastError())
	suite.Equal("Completed", entry.Data()["status_name"])
	suite.EqualValues(1, entry.Data()["order_number"])

	rest, err := suite.repository.ClaimPending(ctx, 10, now, lease)
	suite.Require().NoError(err)
	suite.Require().Len(rest, 1)
	suite.True(second.ID().IsEqual(rest[0].ID()))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestClaimPending_SkipsRowsLockedByAnotherClaim() {
	ctx := context.Background()
	locked := suite.add(1, now)
	free := suite.add(2, now.Add(time.Minute))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	var held outboxrepo.OutboxDTO
	suite.Require().NoError(tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&held, "id = ?", locked.ID().Bytes()).Error)

	claimed, err := suite.repository.ClaimPending(ctx, 10, now, lease)
	suite.Require().NoError(err)
	suite.Require().Len(claimed, 1)
	suite.True(free.ID().IsEqual(claimed[0].ID()))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestClaimPending_LeaseExpiresAndUpdateReleases() {
	ctx := context.Background()
	e := suite.add(1, now)

	claimed, err := suite.repository.ClaimPending(ctx, 10, now, lease)
	suite.Require().NoError(err)
	suite.Require().Len(claimed, 1)

	again, err := suite.repository.ClaimPending(ctx, 10, now.Add(lease-time.Second), lease)
	suite.Require().NoError(err)
	suite.Empty(again)

	expired, err := suite.repository.ClaimPending(ctx, 10, now.Add(lease), lease)
	suite.Require().NoError(err)
	suite.Require().Len(expired, 1)

	e.RecordFailure(errors.New("smtp down"), 5, now.Add(lease))
	suite.Require().NoError(suite.repository.Update(ctx, e))

	released, err := suite.repository.ClaimPending(ctx, 10, now.Add(lease), lease)
	suite.Require().NoError(err)
	suite.Require().Len(released, 1)
	suite.Equal(2, released[0].Attempts())
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestUpdate_SettledEntriesLeaveThePendingList() {
	ctx := context.Background()
	sent := suite.add(1, now)
	failed := suite.add(2, now)
	pending := suite.add(3, now)

	sent.MarkSent(now.Add(time.Minute))
	suite.Require().NoError(suite.repository.Update(ctx, sent))

	failed.RecordFailure(errors.New("mailbox full"), 2, now.Add(time.Minute))
	suite.Require().NoError(suite.repository.Update(ctx, failed))
	suite.Equal(notification.StateFailed, failed.State())

	list, err := suite.repository.ClaimPending(ctx, 10, now, lease)
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.True(pending.ID().IsEqual(list[0].ID()))

	var stored outboxrepo.OutboxDTO
	suite.Require().NoError(suite.db.First(&stored, "id = ?", failed.ID().Bytes()).Error)
	suite.Equal("mailbox full", stored.LastError)
	suite.Equal(2, stored.Attempts)
	suite.Nil(stored.ClaimedUntil)
}

func TestOutboxRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}
