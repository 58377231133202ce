package auth

const (
	// DefaultService is the fallback record for unregistered service names.
	DefaultService = "default"
	// DefaultAuthAPI names the client resource used to identify the user.
	DefaultAuthAPI = "auth"
	// DefaultHeaderKey is the header carrying the token in header mode.
	DefaultHeaderKey = "Auth-Access-Token"
	// AuthorizationHeader switches header mode to "<type> <token>" values.
	AuthorizationHeader = "Authorization"
	// ParamToken is the request param carrying the token in params mode.
	ParamToken = "token"
	// UserAccessToken is the user field holding an embedded access token.
	UserAccessToken = "access_token"
)

// User is the opaque user object returned by a service identify call.
type User map[string]interface{}

// AccessToken returns the user's embedded access token, if it is a non-empty string.
func (u User) AccessToken() (string, bool) {
	if u == nil {
		return "", false
	}
	token, ok := u[UserAccessToken].(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// Settings represents authentication state of a single service.
// An empty Token and a nil User mean absent.
type Settings struct {
	User            User   `json:"user,omitempty"`
	Token           string `json:"-"`
	TriedToIdentify int    `json:"triedToIdentify"`
	AutoIdentify    bool   `json:"autoIdentify"`
	PrepareParams   bool   `json:"prepareParams"`
	AuthAPI         string `json:"authApi"`
}

func defaultSettings() Settings {
	return Settings{
		AutoIdentify:  true,
		PrepareParams: true,
		AuthAPI:       DefaultAuthAPI,
	}
}
