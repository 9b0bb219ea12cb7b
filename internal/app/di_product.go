package app

import (
	"fmt"

	productHTTP "github.com/allisson/store/internal/product/http"
	productRepository "github.com/allisson/store/internal/product/repository"
	productUseCase "github.com/allisson/store/internal/product/usecase"
)

// ProductRepository returns the product repository based on database driver.
func (c *Container) ProductRepository() (productUseCase.ProductRepository, error) {
	var err error
	c.productRepositoryInit.Do(func() {
		c.productRepository, err = c.initProductRepository()
		if err != nil {
			c.initErrors["productRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productRepository"]; exists {
		return nil, storedErr
	}
	return c.productRepository, nil
}

// ProductUseCase returns the product use case.
func (c *Container) ProductUseCase() (productUseCase.UseCase, error) {
	var err error
	c.productUseCaseInit.Do(func() {
		c.productUseCase, err = c.initProductUseCase()
		if err != nil {
			c.initErrors["productUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productUseCase"]; exists {
		return nil, storedErr
	}
	return c.productUseCase, nil
}

// ProductHandler returns the HTTP handler for store products.
func (c *Container) ProductHandler() (*productHTTP.ProductHandler, error) {
	var err error
	c.productHandlerInit.Do(func() {
		c.productHandler, err = c.initProductHandler()
		if err != nil {
			c.initErrors["productHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productHandler"]; exists {
		return nil, storedErr
	}
	return c.productHandler, nil
}

// initProductRepository creates the product repository for the configured driver.
func (c *Container) initProductRepository() (productUseCase.ProductRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for product repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return productRepository.NewMySQLProductRepository(db), nil
	case "postgres":
		return productRepository.NewPostgreSQLProductRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initProductUseCase creates the product use case, wrapped with metrics when enabled.
func (c *Container) initProductUseCase() (productUseCase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for product use case: %w", err)
	}

	repo, err := c.ProductRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get product repository for product use case: %w", err)
	}

	baseUseCase := productUseCase.NewProductUseCase(txManager, repo, c.OwnershipAuthorizer())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for product use case: %w", err)
		}
		return productUseCase.NewProductUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initProductHandler creates the store product handler.
func (c *Container) initProductHandler() (*productHTTP.ProductHandler, error) {
	useCase, err := c.ProductUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get product use case for product handler: %w", err)
	}
	return productHTTP.NewProductHandler(useCase, c.Logger()), nil
}
