package queries_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/orderrepo"
	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetShipmentQueryHandlerTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetShipmentQueryHandler
}

func (suite *GetShipmentQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.TransitionDTO{},
		&shipmentrepo.ShipmentDTO{},
	))

	suite.handler = queries.NewGetShipmentQueryHandler(db)
}

func (suite *GetShipmentQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetShipmentQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_transitions, shipments CASCADE").Error)
}

func (suite *GetShipmentQueryHandlerTestSuite) seedOrder(status order.Status) kernel.UUID {
	orderID := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&orderrepo.OrderDTO{
		ID:     orderID.Bytes(),
		Status: int(status),
	}).Error)
	return orderID
}

func (suite *GetShipmentQueryHandlerTestSuite) seedShipment(orderID kernel.UUID, waybills []string) {
	suite.Require().NoError(suite.db.Create(&shipmentrepo.ShipmentDTO{
		OrderID:        orderID.Bytes(),
		Mode:           int(shipment.Express),
		WeightGrams:    750,
		LengthCm:       20,
		WidthCm:        15,
		HeightCm:       5,
		PickupLocation: "Warehouse A",
		WaybillNumbers: pq.StringArray(waybills),
		TrackingURL:    "https://carrier.example/track",
		CreatedAt:      time.Now().UTC(),
	}).Error)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_OrderWithoutShipment() {
	orderID := suite.seedOrder(order.Pending)
	query, err := queries.NewGetShipmentQuery(orderID)
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("Pending", view.Status)
	suite.False(view.ShipmentCreated)
	suite.False(view.CanCreateShipment)
	suite.Nil(view.Shipment)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_ConfirmedOrderWithoutShipment_CanCreate() {
	orderID := suite.seedOrder(order.Confirmed)
	query, err := queries.NewGetShipmentQuery(orderID)
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("Confirmed", view.Status)
	suite.True(view.CanCreateShipment)
	suite.False(view.ShipmentCreated)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_OrderWithShipment() {
	orderID := suite.seedOrder(order.Dispatched)
	suite.seedShipment(orderID, []string{"WB1", "WB2"})
	query, err := queries.NewGetShipmentQuery(orderID)
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("Dispatched", view.Status)
	suite.True(view.ShipmentCreated)
	suite.False(view.CanCreateShipment)
	suite.Require().NotNil(view.Shipment)
	suite.Equal("Express", view.Shipment.Mode)
	suite.Equal(750, view.Shipment.WeightGrams)
	suite.Equal("Warehouse A", view.Shipment.PickupLocation)
	suite.Equal([]string{"WB1", "WB2"}, view.Shipment.WaybillNumbers)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_ConfirmedWithShipment_CannotCreateAgain() {
	orderID := suite.seedOrder(order.Confirmed)
	suite.seedShipment(orderID, nil)
	query, err := queries.NewGetShipmentQuery(orderID)
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(view.ShipmentCreated)
	suite.False(view.CanCreateShipment)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetShipmentQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetShipmentQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetShipmentQueryHandlerTestSuite))
}
