package cmd

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/fretdex/midi"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	"go.uber.org/zap"
)

var (
	listenFlags constraintFlags
	listenPort  int
	listenDelay time.Duration
	listenLimit int
	listenPorts bool
)

func init() {
	addConstraintFlags(listenCmd, &listenFlags)
	listenCmd.Flags().IntVar(&listenPort, "port", 0, "MIDI input port number")
	listenCmd.Flags().DurationVar(&listenDelay, "debounce", 150*time.Millisecond, "wait this long after the last key change before searching")
	listenCmd.Flags().IntVarP(&listenLimit, "limit", "n", 3, "print at most this many shapes")
	listenCmd.Flags().BoolVar(&listenPorts, "list-ports", false, "list MIDI input ports and exit")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Finds shapes for the keys held on a MIDI keyboard",
	Long: `Listens on a MIDI input and, once the held keys settle, prints shapes for
them with the lowest held key as the root. Stops on interrupt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer gomidi.CloseDriver()
		out := cmd.OutOrStdout()

		if listenPorts {
			fmt.Fprintln(out, gomidi.GetInPorts())
			return nil
		}

		c, _, err := listenFlags.resolve(cmd)
		if err != nil {
			return err
		}
		in, err := gomidi.InPort(listenPort)
		if err != nil {
			return fmt.Errorf("can't open MIDI input %d: %w", listenPort, err)
		}

		held := midi.NewHeldNotes()
		debounced := debounce.New(listenDelay)

		// debounce runs show on its own timer goroutine
		var printMu sync.Mutex
		show := func() {
			spec, err := held.Chord()
			if errors.Is(err, midi.ErrNoNotes) {
				return
			}
			res, err := runSearch(cmd.Context(), spec, c, listenFlags.parallel)
			if err != nil {
				logger.Warn("Search failed", zap.Error(err))
				return
			}
			shapes := res.Shapes
			if listenLimit > 0 && len(shapes) > listenLimit {
				shapes = shapes[:listenLimit]
			}

			printMu.Lock()
			defer printMu.Unlock()
			if err := printShapes(out, spec, shapes, false); err != nil {
				logger.Warn("Could not print shapes", zap.Error(err))
			}
		}

		stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
			var ch, key, vel uint8
			switch {
			case msg.GetNoteStart(&ch, &key, &vel):
				held.Press(key)
				debounced(show)
			case msg.GetNoteEnd(&ch, &key):
				held.Release(key)
				debounced(show)
			default:
				// ignore
			}
		})
		if err != nil {
			return fmt.Errorf("listening on MIDI input %d: %w", listenPort, err)
		}
		defer stop()

		logger.Info("Listening", zap.String("port", in.String()))
		<-cmd.Context().Done()
		return nil
	},
}
