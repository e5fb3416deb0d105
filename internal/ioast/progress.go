package ioast

import (
	"github.com/cheggaaa/pb/v3"
)

// dirsTmpl shows how many source directories are parsed so far.
const dirsTmpl pb.ProgressBarTemplate = `{{string . "prefix"}}` +
	`{{counters . }} dirs {{bar . }} {{percent . }} {{etime . }}`

// newProgressBar creates a progress bar for parsing of source
// directories.
func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := dirsTmpl.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
