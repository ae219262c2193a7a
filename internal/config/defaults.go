package config

import "time"

// Default values applied when no other configuration source provides one.
// The OMDB base URL matches the public provider endpoint; the session
// duration mirrors a typical "remember me for a day" web session.
const (
	DefaultHTTPAddress     = "0.0.0.0:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultMongoDatabase   = "movie_recs"
	DefaultOMDBBaseURL     = "http://www.omdbapi.com/"
	DefaultOMDBTimeout     = 15 * time.Second
	DefaultSessionIssuer   = "movie-recs"
	DefaultSessionDuration = 24 * time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionIssuer:   DefaultSessionIssuer,
			SessionDuration: DefaultSessionDuration,
		},
		Storage: Storage{
			Mongo: Mongo{
				Database: DefaultMongoDatabase,
			},
		},
		OMDB: OMDB{
			BaseURL: DefaultOMDBBaseURL,
			Timeout: DefaultOMDBTimeout,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
