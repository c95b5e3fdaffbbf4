package timefmt

import "time"

// Layout renders timestamps the way they are stored on users and posts,
// e.g. "Monday  2 January 2006 15:04:05".
const Layout = "Monday _2 January 2006 15:04:05"

// Now returns the current local time rendered with Layout.
func Now() string {
	return time.Now().Format(Layout)
}
