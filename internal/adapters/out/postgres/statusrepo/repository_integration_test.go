package statusrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/adapters/out/postgres/statusrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/status"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type StatusRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	statuses  *statusrepo.GormStatusRepository
	history   *statusrepo.GormHistoryRepository
	orderID   kernel.ID
}

func (suite *StatusRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Run(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.statuses = statusrepo.NewGormStatusRepository(db)
	suite.history = statusrepo.NewGormHistoryRepository(db)
}

// SetupTest starts from an empty database holding a single order, the subject of
// every history entry.
func (suite *StatusRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	dto := orderrepo.OrderDTO{Hash: order.NewHash().String(), LocationID: 1, OrderType: string(order.Collection)}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	suite.orderID = kernel.ID(dto.ID)
}

func (suite *StatusRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *StatusRepositoryIntegrationTestSuite) append(statusID kernel.ID, comment string, at time.Time) {
	entry, err := status.NewHistoryEntry(status.SubjectOrder, suite.orderID, statusID, comment, true, kernel.ID(77).Ptr(), at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.history.Append(context.Background(), entry))
}

func (suite *StatusRepositoryIntegrationTestSuite) TestSaveAndGet() {
	ctx := context.Background()
	s, err := status.NewStatus(2, "Processing", "#ff0", "We are preparing your order", true)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.statuses.Save(ctx, s))

	loaded, err := suite.statuses.Get(ctx, 2)
	suite.Require().NoError(err)
	suite.Equal("Processing", loaded.Name())
	suite.Equal("We are preparing your order", loaded.CommentTemplate())
	suite.True(loaded.NotifyByDefault())

	_, err = suite.statuses.Get(ctx, 3)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StatusRepositoryIntegrationTestSuite) TestExistsInStatuses() {
	ctx := context.Background()
	suite.append(1, "", time.Now())

	exists, err := suite.history.ExistsInStatuses(ctx, status.SubjectOrder, suite.orderID, []kernel.ID{2, 3})
	suite.Require().NoError(err)
	suite.False(exists)

	suite.append(3, "", time.Now())

	exists, err = suite.history.ExistsInStatuses(ctx, status.SubjectOrder, suite.orderID, []kernel.ID{2, 3})
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.history.ExistsInStatuses(ctx, status.SubjectOrder, suite.orderID, nil)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *StatusRepositoryIntegrationTestSuite) TestListForSubject_OldestFirst() {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	suite.append(5, "done", base.Add(2*time.Minute))
	suite.append(2, "started", base)

	entries, err := suite.history.ListForSubject(context.Background(), status.SubjectOrder, suite.orderID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal(kernel.ID(2), entries[0].StatusID())
	suite.Equal("started", entries[0].Comment())
	suite.Equal(kernel.ID(5), entries[1].StatusID())
	suite.Require().NotNil(entries[1].ActorID())
	suite.Equal(kernel.ID(77), *entries[1].ActorID())
	suite.True(entries[1].Notify())
}

func TestStatusRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(StatusRepositoryIntegrationTestSuite))
}
