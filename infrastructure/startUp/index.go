package startup

import (
	"safiri.io/application/repository"
	payment_usecases "safiri.io/application/usecases/payment"
	"safiri.io/infrastructure/database"
	"safiri.io/infrastructure/database/connection/datastore"
	"safiri.io/infrastructure/database/repository/cache"
	"safiri.io/infrastructure/env"
	"safiri.io/infrastructure/logger"
	"safiri.io/infrastructure/payments"
)

// Used to start services such as loggers, databases, queues, etc.
func StartServices() {
	logger.InitializeLogger()
	database.SetUpDatabase()

	processor, err := payments.InitialisePaymentProcessor()
	if err != nil {
		// Misconfigured gateway credentials must stop the boot. A server that
		// accepts initiation requests it cannot forward is worse than one
		// that is down.
		logger.Error("daraja client initialisation failed", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		panic(err)
	}

	payment_usecases.Initialise(&payment_usecases.Service{
		Store:   repository.PaymentTransactionStore(),
		Gateway: processor,
		Locks:   cache.Cache,
		LockTTL: env.GetDuration("RESOLUTION_LOCK_TTL", 0),
	})
}

// Used to clean up after services that have been shutdown.
func CleanUpServices() {
	datastore.CleanUp()
}
