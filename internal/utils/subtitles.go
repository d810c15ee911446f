package utils

// subtitlesDubbingNames maps the schedule's subtitles/dubbing code to
// the display name shown on the ticket.  Codes come from the theater
// schedule feed and are stable across theaters.
var subtitlesDubbingNames = map[string]string{
	"1": "字幕版",
	"2": "吹替版",
	"3": "字幕・吹替版",
}

// SubtitlesDubbingName resolves a subtitles/dubbing code to its display
// name.  Unknown codes return ("", false) and the caller leaves the
// name unset rather than guessing.
func SubtitlesDubbingName(code string) (string, bool) {
	name, ok := subtitlesDubbingNames[code]
	return name, ok
}
