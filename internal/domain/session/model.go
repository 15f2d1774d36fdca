package session

import "nutrisnap/internal/domain/accounts"

// State es lo que el cliente necesita para decidir qué pantalla mostrar.
type State struct {
	LoggedIn               bool
	HasCompletedOnboarding bool

	UserID string
	Email  string

	Profile *accounts.Profile
	User    *accounts.User
}

// Screen es el grupo de pantallas al que corresponde el estado.
// @Enum login, onboarding, tabs
type Screen string

const (
	ScreenLogin      Screen = "login"
	ScreenOnboarding Screen = "onboarding"
	ScreenTabs       Screen = "tabs"
)

// Destination: sin sesión => login; sin onboarding => onboarding; si no => tabs.
func Destination(s State) Screen {
	switch {
	case !s.LoggedIn:
		return ScreenLogin
	case !s.HasCompletedOnboarding:
		return ScreenOnboarding
	default:
		return ScreenTabs
	}
}
