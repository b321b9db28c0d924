// Package cli implements the codeswitch command line client.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/satriahrh/codeswitch/pkg/ttsclient"
)

var version = "0.1.0"

const (
	keyServerURL  = "tts-server-url"
	keyLocalDevIP = "local-dev-ip"
	keyToken      = "tts-auth-token"
	keyJWTSecret  = "auth-jwt-secret"
	keyVerbose    = "verbose"
)

// NewRootCmd builds the command tree around its own viper instance
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "codeswitch",
		Short: "Client for the codeswitch speech server",
		Long: `Talks to a running codeswitch server.

Settings come from flags, then environment variables (TTS_SERVER_URL,
LOCAL_DEV_IP, TTS_AUTH_TOKEN, AUTH_JWT_SECRET), then an optional config file
(~/.codeswitch.yaml or --config).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cfgFile)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $HOME/.codeswitch.yaml)")
	flags.String("server-url", "", "synthesis server URL, overrides --local-dev-ip")
	flags.String("local-dev-ip", "", "address of a development server on port 4000")
	flags.String("token", "", "bearer token sent to the server")
	flags.BoolP("verbose", "v", false, "log at debug level")

	_ = v.BindPFlag(keyServerURL, flags.Lookup("server-url"))
	_ = v.BindPFlag(keyLocalDevIP, flags.Lookup("local-dev-ip"))
	_ = v.BindPFlag(keyToken, flags.Lookup("token"))
	_ = v.BindPFlag(keyVerbose, flags.Lookup("verbose"))

	rootCmd.AddCommand(newSpeakCmd(v), newTokenCmd(v))
	return rootCmd
}

// Execute runs the CLI and exits non-zero on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		v.AddConfigPath(home)
		v.SetConfigName(".codeswitch")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// clientConfig maps the resolved settings onto the synthesis client config
func clientConfig(v *viper.Viper) ttsclient.Config {
	return ttsclient.Config{
		ServerURL:  v.GetString(keyServerURL),
		LocalDevIP: v.GetString(keyLocalDevIP),
		Token:      v.GetString(keyToken),
	}
}

func newLogger(v *viper.Viper) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	if !v.GetBool(keyVerbose) {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return config.Build()
}
