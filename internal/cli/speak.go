package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/satriahrh/codeswitch/adapters/playback"
	"github.com/satriahrh/codeswitch/pkg/ttsclient"
)

func newSpeakCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "speak [text...]",
		Short: "Synthesize text on the server and play it",
		Long: `Sends the text to the server's /text-to-speech route and plays the audio.
Reads the text from stdin when no arguments are given. Ctrl-C stops playback.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				input, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				text = string(input)
			}

			logger, err := newLogger(v)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer logger.Sync()

			client, err := ttsclient.NewClient(clientConfig(v), playback.NewBeepPlayer(logger), logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			session, err := client.Speak(ctx, text, func(speaking bool) {
				logger.Debug("Speaking state changed", zap.Bool("speaking", speaking))
			})
			if err != nil {
				return err
			}

			select {
			case <-session.Done():
			case <-ctx.Done():
				session.Stop()
				fmt.Fprintln(cmd.ErrOrStderr(), "Playback stopped")
			}
			return nil
		},
	}
}
