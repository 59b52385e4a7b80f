package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRegisterIdentityCommandHandler() commands.RegisterIdentityCommandHandler {
	var f commands.IdentityUoWFactory = FuncIdentityUoWFactory(func() commands.IdentityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterIdentityCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateListingCommandHandler() commands.CreateListingCommandHandler {
	var f commands.ListingIdentityUoWFactory = FuncListingIdentityUoWFactory(func() commands.ListingIdentityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateListingCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderListingUoWFactory = FuncOrderListingUoWFactory(func() commands.OrderListingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.createListingCounterIncrementer(), c.logger)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	var f commands.OrderIdentityUoWFactory = FuncOrderIdentityUoWFactory(func() commands.OrderIdentityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAppendMessageCommandHandler() commands.AppendMessageCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendMessageCommandHandler(f)
}

func (c *CompositionRoot) CreateAppendDeliverableCommandHandler() commands.AppendDeliverableCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendDeliverableCommandHandler(f)
}

func (c *CompositionRoot) CreateAttachRatingCommandHandler() commands.AttachRatingCommandHandler {
	var f commands.OrderIdentityUoWFactory = FuncOrderIdentityUoWFactory(func() commands.OrderIdentityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachRatingCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileListingCountersCommandHandler() commands.ReconcileListingCountersCommandHandler {
	var f commands.ListingUoWFactory = FuncListingUoWFactory(func() commands.ListingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileListingCountersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersForUserQueryHandler() queries.ListOrdersForUserQueryHandler {
	return queries.NewListOrdersForUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListListingsQueryHandler() queries.ListListingsQueryHandler {
	return queries.NewListListingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcileListingCountersCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	auth := httpadapter.NewAuth(c.config.JWTSecret)

	return httpadapter.NewServer(
		auth,
		c.uowFactory.Create().IdentityRepository(),
		c.CreateRegisterIdentityCommandHandler(),
		c.CreateCreateListingCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateTransitionOrderStatusCommandHandler(),
		c.CreateAppendMessageCommandHandler(),
		c.CreateAppendDeliverableCommandHandler(),
		c.CreateAttachRatingCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersForUserQueryHandler(),
		c.CreateListListingsQueryHandler(),
	)
}

// createListingCounterIncrementer builds the non-transactional listing
// repository used to bump order counters after commit.
func (c *CompositionRoot) createListingCounterIncrementer() commands.ListingCounterIncrementer {
	return c.uowFactory.Create().ListingRepository()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncListingUoWFactory func() commands.ListingUoW

func (f FuncListingUoWFactory) Create() commands.ListingUoW {
	return f()
}

type FuncIdentityUoWFactory func() commands.IdentityUoW

func (f FuncIdentityUoWFactory) Create() commands.IdentityUoW {
	return f()
}

type FuncOrderListingUoWFactory func() commands.OrderListingUoW

func (f FuncOrderListingUoWFactory) Create() commands.OrderListingUoW {
	return f()
}

type FuncOrderIdentityUoWFactory func() commands.OrderIdentityUoW

func (f FuncOrderIdentityUoWFactory) Create() commands.OrderIdentityUoW {
	return f()
}

type FuncListingIdentityUoWFactory func() commands.ListingIdentityUoW

func (f FuncListingIdentityUoWFactory) Create() commands.ListingIdentityUoW {
	return f()
}
