/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/allbin/zwave-ports/internal/config"
	"github.com/allbin/zwave-ports/internal/watch"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Report serial endpoints as they appear and disappear",
	Long: `Watch for serial endpoints being plugged in or removed.

Changes in /dev trigger an immediate rescan; a periodic rescan covers systems
where /dev cannot be watched. Each change is printed as it is detected. With
an MQTT broker configured, events are also published to <topic>/added and
<topic>/removed.

Examples:
  zwports watch
  zwports watch -o json
  zwports watch --mqtt-broker tcp://localhost:1883`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner, err := newScanner()
		if err != nil {
			return err
		}

		var publisher *watch.Publisher
		if appConfig.MQTT.Broker != "" {
			publisher, err = watch.NewPublisher(appConfig.MQTT)
			if err != nil {
				return err
			}
			defer publisher.Close()
			logger.Info("Publishing endpoint events", zap.String("broker", appConfig.MQTT.Broker), zap.String("topic", appConfig.MQTT.Topic))
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w := watch.New(scanner, scanner.DeviceDir(), appConfig.Watch.Interval, appConfig.Watch.Debounce, logger)
		initial := w.Snapshot()

		out := cmd.OutOrStdout()
		if appConfig.Output == config.OutputText {
			fmt.Fprintf(out, "Watching %d serial port(s), press Ctrl+C to stop\n", len(initial))
		}

		err = w.Run(ctx, initial, func(ev watch.Event) {
			if err := printEvent(out, appConfig.Output, ev); err != nil {
				logger.Warn("Failed to print event", zap.Error(err))
			}
			if publisher != nil {
				if err := publisher.Publish(ev); err != nil {
					logger.Warn("Failed to publish event", zap.Error(err), zap.String("port", ev.Endpoint.Name))
				}
			}
		})
		return err
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().Duration("interval", 0, "rescan interval (default from config, 2s)")
	watchCmd.Flags().String("mqtt-broker", "", "MQTT broker URL to publish events to")
	watchCmd.Flags().String("mqtt-topic", "", "base MQTT topic (default from config, zwports/endpoints)")

	_ = v.BindPFlag("watch.interval", watchCmd.Flags().Lookup("interval"))
	_ = v.BindPFlag("mqtt.broker", watchCmd.Flags().Lookup("mqtt-broker"))
	_ = v.BindPFlag("mqtt.topic", watchCmd.Flags().Lookup("mqtt-topic"))
}

// printEvent writes one event line; JSON output is one object per line
func printEvent(w io.Writer, format string, ev watch.Event) error {
	switch format {
	case config.OutputJSON:
		data, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case config.OutputYAML:
		fmt.Fprintln(w, "---")
		_, err := writeStructured(w, format, ev)
		return err
	default:
		sign := "+"
		if ev.Type == watch.EventRemoved {
			sign = "-"
		}
		_, err := fmt.Fprintf(w, "%s %s %s\n", ev.Time.Format("15:04:05"), sign, ev.Endpoint.DisplayName())
		return err
	}
}
