package cmd

import (
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterPartnerCommandHandler() commands.RegisterPartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterPartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePartnerCommandHandler() commands.UpdatePartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderPartnerUoWFactory = FuncOrderPartnerUoWFactory(func() commands.OrderPartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignPartnerCommandHandler() commands.AssignPartnerCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateRunSmartAssignmentCommandHandler() commands.RunSmartAssignmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRunSmartAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnersQueryHandler() queries.GetPartnersQueryHandler {
	return queries.NewGetPartnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignmentMetricsQueryHandler() queries.GetAssignmentMetricsQueryHandler {
	return queries.NewGetAssignmentMetricsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignmentHistoryQueryHandler() queries.GetAssignmentHistoryQueryHandler {
	return queries.NewGetAssignmentHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardMetricsQueryHandler() queries.GetDashboardMetricsQueryHandler {
	return queries.NewGetDashboardMetricsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncOrderPartnerUoWFactory func() commands.OrderPartnerUoW

func (f FuncOrderPartnerUoWFactory) Create() commands.OrderPartnerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
