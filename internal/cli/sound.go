package cli

import (
	"context"
	"fmt"
	"strconv"
)

// SoundPrefs shows or changes the playback preferences:
// sound | sound mute | sound unmute | sound volume <0..1>.
func (a *App) SoundPrefs(ctx context.Context, args []string) {
	if len(args) == 0 {
		s := a.ctx.Sound.Current()
		state := "on"
		if s.Muted {
			state = "muted"
		}
		fmt.Fprintf(a.out, "Sound: %s, volume %.0f%%\n", state, s.Volume*100)
		return
	}

	switch args[0] {
	case "mute":
		a.ctx.Sound.SetMuted(ctx, true)
		fmt.Fprintln(a.out, "Sound muted.")
	case "unmute":
		a.ctx.Sound.SetMuted(ctx, false)
		fmt.Fprintln(a.out, "Sound on.")
	case "volume":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: sound volume <0..1>")
			return
		}
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Fprintln(a.out, "Usage: sound volume <0..1>")
			return
		}
		a.ctx.Sound.SetVolume(ctx, v)
		fmt.Fprintf(a.out, "Volume set to %.0f%%\n", a.ctx.Sound.Current().Volume*100)
	default:
		fmt.Fprintln(a.out, "Usage: sound [mute|unmute|volume <0..1>]")
	}
}
