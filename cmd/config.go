package cmd

// Config carries all runtime settings, loaded from the environment.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	KafkaBrokers           []string `envconfig:"KAFKA_BROKERS" required:"true"`
	KafkaOrderChangedTopic string   `envconfig:"KAFKA_ORDER_CHANGED_TOPIC" default:"marketplace.order.changed"`

	GeocoderBaseURL   string `envconfig:"GEOCODER_BASE_URL" default:"https://nominatim.openstreetmap.org"`
	GeocoderUserAgent string `envconfig:"GEOCODER_USER_AGENT" default:"marketplace/1.0"`

	// DefaultSupplierID is used when an order request does not name a supplier.
	// Empty means orders must always name one.
	DefaultSupplierID string `envconfig:"DEFAULT_SUPPLIER_ID"`

	AgentSpeedKmh float64 `envconfig:"AGENT_SPEED_KMH" default:"30"`

	GeocodeBackfillSpec      string `envconfig:"GEOCODE_BACKFILL_SPEC" default:"*/30 * * * * *"`
	GeocodeBackfillBatchSize int    `envconfig:"GEOCODE_BACKFILL_BATCH_SIZE" default:"50"`
}
