package connection

import (
	"safiri.io/infrastructure/database/connection/cache"
	"safiri.io/infrastructure/database/connection/datastore"
)

func ConnectToDatabase() {
	datastore.ConnectToDatabase()
	cache.ConnectToCache()
}
