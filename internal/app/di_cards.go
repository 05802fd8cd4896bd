package app

import (
	"fmt"

	cardsHTTP "github.com/edulearn/cardvault/internal/cards/http"
	cardsRepository "github.com/edulearn/cardvault/internal/cards/repository"
	cardsService "github.com/edulearn/cardvault/internal/cards/service"
	cardsUseCase "github.com/edulearn/cardvault/internal/cards/usecase"
)

// EnvelopeCodec returns the card envelope codec.
func (c *Container) EnvelopeCodec() (cardsService.EnvelopeCodec, error) {
	var err error
	c.envelopeCodecInit.Do(func() {
		c.envelopeCodec, err = c.initEnvelopeCodec()
		if err != nil {
			c.initErrors["envelopeCodec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["envelopeCodec"]; exists {
		return nil, storedErr
	}
	return c.envelopeCodec, nil
}

// CardRepository returns the card envelope repository based on database driver.
func (c *Container) CardRepository() (cardsUseCase.CardEnvelopeRepository, error) {
	var err error
	c.cardRepoInit.Do(func() {
		c.cardRepo, err = c.initCardRepository()
		if err != nil {
			c.initErrors["cardRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cardRepo"]; exists {
		return nil, storedErr
	}
	return c.cardRepo, nil
}

// CardUseCase returns the card use case.
func (c *Container) CardUseCase() (cardsUseCase.CardUseCase, error) {
	var err error
	c.cardUseCaseInit.Do(func() {
		c.cardUseCase, err = c.initCardUseCase()
		if err != nil {
			c.initErrors["cardUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cardUseCase"]; exists {
		return nil, storedErr
	}
	return c.cardUseCase, nil
}

// CardHandler returns the HTTP handler for card management operations.
func (c *Container) CardHandler() (*cardsHTTP.CardHandler, error) {
	var err error
	c.cardHandlerInit.Do(func() {
		c.cardHandler, err = c.initCardHandler()
		if err != nil {
			c.initErrors["cardHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cardHandler"]; exists {
		return nil, storedErr
	}
	return c.cardHandler, nil
}

// initEnvelopeCodec creates the envelope codec from the field cipher and integrity hasher.
func (c *Container) initEnvelopeCodec() (cardsService.EnvelopeCodec, error) {
	cipher, err := c.FieldCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get field cipher for envelope codec: %w", err)
	}

	return cardsService.NewCardEnvelopeCodec(cipher, c.IntegrityHasher()), nil
}

// initCardRepository creates the card envelope repository based on the database driver.
func (c *Container) initCardRepository() (cardsUseCase.CardEnvelopeRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for card repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return cardsRepository.NewPostgreSQLCardRepository(db), nil
	case "mysql":
		return cardsRepository.NewMySQLCardRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCardUseCase creates the card use case with all its dependencies, wrapped
// with the business metrics decorator.
func (c *Container) initCardUseCase() (cardsUseCase.CardUseCase, error) {
	codec, err := c.EnvelopeCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get envelope codec for card use case: %w", err)
	}

	cardRepo, err := c.CardRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get card repository for card use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for card use case: %w", err)
	}

	useCase := cardsUseCase.NewCardUseCase(codec, cardRepo, c.Logger())
	return cardsUseCase.NewCardUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initCardHandler creates the card HTTP handler.
func (c *Container) initCardHandler() (*cardsHTTP.CardHandler, error) {
	useCase, err := c.CardUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get card use case for card handler: %w", err)
	}

	return cardsHTTP.NewCardHandler(useCase, c.Logger()), nil
}
