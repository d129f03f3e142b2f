package database

import "fmt"

// Config holds the connection settings for the catalog database.
type Config struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN renders the keyword/value connection string understood by both the
// gorm postgres driver and lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Pass, c.Name,
	)
}
