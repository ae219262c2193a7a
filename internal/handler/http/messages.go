package http

// User-facing messages rendered by failed form submissions. The wording is
// part of the application's visible contract and must not drift.
const (
	msgUsernameRequired   = "Username is required"
	msgPasswordRequired   = "Password is required"
	msgIncorrectUsername  = "Incorrect username."
	msgIncorrectPassword  = "Incorrect password."
	msgMovieTitleRequired = "A movie title is required"
	msgMovieLookupFailed  = "The movie lookup failed. Please try again later."

	// Formats taking the offending value via fmt.Sprintf.
	msgUserAlreadyRegisteredFormat = "User %s is already registered."
	msgMovieNotFoundFormat         = "The movie %q was not found in the OMDB."
	msgMovieAlreadyAddedFormat     = "The movie %q has already been added."
)
