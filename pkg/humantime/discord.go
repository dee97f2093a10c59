package humantime

import (
	"fmt"
	"time"
)

// TimestampStyle selects how a chat client renders embedded timestamp
// markup.
type TimestampStyle string

// Styles understood by Discord's <t:...> markup.
const (
	ShortTime     TimestampStyle = "t" // 16:20
	LongTime      TimestampStyle = "T" // 16:20:30
	ShortDate     TimestampStyle = "d" // 20/04/2021
	LongDate      TimestampStyle = "D" // 20 April 2021
	ShortDateTime TimestampStyle = "f" // 20 April 2021 16:20
	LongDateTime  TimestampStyle = "F" // Tuesday, 20 April 2021 16:20
	Relative      TimestampStyle = "R" // 2 months ago
)

// DiscordTimestamp renders t as timestamp markup, which clients display in
// the reader's own timezone and locale. An empty style falls back to
// ShortDateTime, mirroring the client default.
func DiscordTimestamp(t time.Time, style TimestampStyle) string {
	if style == "" {
		style = ShortDateTime
	}
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), style)
}
