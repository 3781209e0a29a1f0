package scenario

// Config holds settings for running a scenario.
type Config struct {
	// Addr is the base URL of the mylogin HTTP server, e.g. http://localhost:3000.
	Addr     string
	Username string
	Password string
	// ComposePath is the path to docker-compose.yml (used by scenarios that stop/start services).
	ComposePath string
}
