package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/s0up4200/monta/monta"
	"github.com/s0up4200/monta/state"
)

var (
	eventsSince    int64
	eventsFollow   bool
	eventsInterval time.Duration
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Print order events after the last one seen",
	Long: `Print order events. The highest event id is remembered in the state store
(state.type), so the next run continues after it. --since overrides the stored
position; --follow keeps polling until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runEvents,
}

func init() {
	eventsCmd.Flags().Int64Var(&eventsSince, "since", 0, "start after this event id instead of the stored one")
	eventsCmd.Flags().BoolVarP(&eventsFollow, "follow", "f", false, "keep polling for new events")
	eventsCmd.Flags().DurationVar(&eventsInterval, "interval", time.Minute, "poll interval with --follow")
	rootCmd.AddCommand(eventsCmd)
}

// eventSource is the part of the Monta client the event sync needs
type eventSource interface {
	GetOrderEvents(ctx context.Context, sinceID int64) (string, error)
}

func runEvents(cmd *cobra.Command, args []string) error {
	if eventsInterval <= 0 {
		return fmt.Errorf("--interval must be positive")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := state.NewStore(cfg.State.Type, cfg.State.Path)
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}
	defer store.Close()

	since := eventsSince
	if !cmd.Flags().Changed("since") {
		if since, err = store.Cursor(state.OrderEvents); err != nil {
			return fmt.Errorf("failed to read event cursor: %w", err)
		}
	}

	logger.Debug().Int64("since", since).Bool("follow", eventsFollow).Msg("Reading order events")

	return pollEvents(ctx, cmd.OutOrStdout(), client, store, since, eventsFollow, eventsInterval)
}

// pollEvents syncs pages until the cursor stops advancing, then returns or,
// with follow, waits interval before polling again. A full page is followed
// at once only when it moved the cursor.
func pollEvents(ctx context.Context, out io.Writer, src eventSource, store state.Store, since int64, follow bool, interval time.Duration) error {
	for {
		next, count, err := syncEvents(ctx, out, src, store, since)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		advanced := next > since
		since = next

		if count >= monta.MaxOrderEvents {
			if advanced {
				continue
			}
			logger.Warn().Int64("since", since).Int("count", count).Msg("Full page of order events without a newer id")
		}
		if !follow {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
}

// syncEvents fetches one page of events after since, writes the body to out
// and advances the stored cursor. It returns the new cursor and the number of
// events in the page.
func syncEvents(ctx context.Context, out io.Writer, src eventSource, store state.Store, since int64) (int64, int, error) {
	body, err := src.GetOrderEvents(ctx, since)
	if err != nil {
		return since, 0, fmt.Errorf("failed to get order events: %w", err)
	}

	count, maxID := summarizeEvents([]byte(body))
	if count == 0 {
		logger.Debug().Int64("since", since).Msg("No new order events")
		return since, 0, nil
	}

	fmt.Fprintln(out, body)

	if maxID > since {
		if err := store.SaveCursor(state.OrderEvents, maxID); err != nil {
			return since, count, fmt.Errorf("failed to save event cursor: %w", err)
		}
		since = maxID
	}

	logger.Info().Int("count", count).Int64("cursor", since).Msg("Order events received")
	return since, count, nil
}

// eventIDKeys are the field names an event id may appear under
var eventIDKeys = []string{"Id", "ID", "id", "EventId"}

// summarizeEvents counts the events in a response and finds the highest id.
// The events are either the top-level array or the first array inside a
// top-level object. Anything else, such as a 404 message, counts as none.
func summarizeEvents(body []byte) (count int, maxID int64) {
	events := jsoniter.Get(body)
	if events.LastError() != nil {
		return 0, 0
	}

	if events.ValueType() == jsoniter.ObjectValue {
		var found jsoniter.Any
		for _, key := range events.Keys() {
			if v := events.Get(key); v.ValueType() == jsoniter.ArrayValue {
				found = v
				break
			}
		}
		if found == nil {
			return 0, 0
		}
		events = found
	}

	if events.ValueType() != jsoniter.ArrayValue {
		return 0, 0
	}

	count = events.Size()
	for i := 0; i < count; i++ {
		event := events.Get(i)
		for _, key := range eventIDKeys {
			if id := event.Get(key); id.ValueType() == jsoniter.NumberValue {
				maxID = max(maxID, id.ToInt64())
				break
			}
		}
	}
	return count, maxID
}
