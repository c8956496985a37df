package cmd

import "time"

// Config carries all runtime settings of the shipping service, loaded from the
// environment at startup.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost               string
	KafkaStatusChangedTopic string

	OverdueScanSchedule string
	OverdueThreshold    time.Duration
}

// DBConnectionString assembles the Postgres DSN from the database settings.
func (c Config) DBConnectionString() string {
	return "host=" + c.DBHost +
		" port=" + c.DBPort +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" sslmode=" + c.DBSslMode
}
