package ttsclient

import (
	"net/http"
	"os"
	"strings"
)

const (
	defaultHost          = "localhost"
	defaultPort          = "4000"
	defaultLanguageCode  = "en-US"
	defaultSSMLGender    = "NEUTRAL"
	defaultAudioEncoding = "MP3"
)

// Config holds client settings. Every field is optional.
type Config struct {
	// ServerURL wins over LocalDevIP when set, e.g. "https://tts.example.com"
	ServerURL string
	// LocalDevIP points the client at a development machine on the LAN
	LocalDevIP string
	// Token is sent as a bearer token when set
	Token string

	LanguageCode  string
	SSMLGender    string
	AudioEncoding string

	HTTPClient *http.Client
}

// NewConfigFromEnv reads TTS_SERVER_URL, LOCAL_DEV_IP and TTS_AUTH_TOKEN
func NewConfigFromEnv() Config {
	return Config{
		ServerURL:  os.Getenv("TTS_SERVER_URL"),
		LocalDevIP: os.Getenv("LOCAL_DEV_IP"),
		Token:      os.Getenv("TTS_AUTH_TOKEN"),
	}
}

// ResolveServerURL returns the synthesis server root without a trailing slash
func ResolveServerURL(config Config) string {
	if config.ServerURL != "" {
		return strings.TrimRight(config.ServerURL, "/")
	}

	host := defaultHost
	if config.LocalDevIP != "" {
		host = config.LocalDevIP
	}
	return "http://" + host + ":" + defaultPort
}
