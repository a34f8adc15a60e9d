package cmd

import (
	"marketplace/internal/adapters/out/geo"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All Create methods
// are cheap; handlers hold no state beyond their dependencies.
type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	producer     *kafka.OrderChangedProducer
	geocoder     ports.Geocoder
	etaEstimator services.EtaEstimator
	config       Config
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	producer *kafka.OrderChangedProducer,
	geocoder *geo.NominatimClient,
) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		producer:     producer,
		geocoder:     geocoder,
		etaEstimator: services.NewEtaEstimator(config.AgentSpeedKmh),
		config:       config,
	}
}

// Producer exposes the Kafka producer for graceful shutdown.
func (c *CompositionRoot) Producer() *kafka.OrderChangedProducer {
	return c.producer
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.producer)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.producer)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f, c.producer)
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptDeliveryCommandHandler(f, c.etaEstimator, c.producer)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f, c.producer)
}

func (c *CompositionRoot) CreateBackfillDeliveryCoordinatesCommandHandler() commands.BackfillDeliveryCoordinatesCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBackfillDeliveryCoordinatesCommandHandler(f, c.geocoder)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteProductCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVendorOrdersQueryHandler() queries.GetVendorOrdersQueryHandler {
	return queries.NewGetVendorOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSupplierOrdersQueryHandler() queries.GetSupplierOrdersQueryHandler {
	return queries.NewGetSupplierOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableProductsQueryHandler() queries.GetAvailableProductsQueryHandler {
	return queries.NewGetAvailableProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSupplierProductsQueryHandler() queries.GetSupplierProductsQueryHandler {
	return queries.NewGetSupplierProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableDeliveriesQueryHandler() queries.GetAvailableDeliveriesQueryHandler {
	return queries.NewGetAvailableDeliveriesQueryHandler(c.gormDB, c.etaEstimator)
}

func (c *CompositionRoot) CreateGetAgentDeliveriesQueryHandler() queries.GetAgentDeliveriesQueryHandler {
	return queries.NewGetAgentDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryDetailsQueryHandler() queries.GetDeliveryDetailsQueryHandler {
	return queries.NewGetDeliveryDetailsQueryHandler(c.gormDB, c.etaEstimator)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
